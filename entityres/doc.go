// Package entityres groups records that share a value across a chosen
// set of columns: a record-level entity-resolution driver built on top
// of dsu and label, the same way graph is.
//
// What
//
//   - GroupID takes a set of equal-length columns (strings, integers, or
//     floats) and unions any two rows that share a non-excluded value in
//     any column, then reports a dense [1,G] group label per row, with
//     group 0 reserved for components smaller than MinGroupSize.
//
// Why
//
//   - Every column value is normalised to a canonical string (decimal for
//     integers, strconv.FormatFloat's shortest round-tripping form for
//     floats) and treated as one more edge endpoint in a bipartite
//     record-value graph; the union pass runs on dsu directly (rows are
//     already a dense [0,R) index, so no interning step is needed), and
//     label.Compute produces the base dense labelling and component
//     sizes exactly as graph does. The MinGroupSize filter and the
//     resulting re-numbering of surviving groups down to [1,G] are
//     layered on top of that base labelling, not a reimplementation of
//     it.
//
// Determinism
//
//   - Group labels are a function of row order and first-appearance
//     value discovery; they are not portable across a reordering of the
//     input rows, though the partition they describe is (spec §4.5).
package entityres
