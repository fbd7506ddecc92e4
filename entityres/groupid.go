package entityres

import (
	"github.com/katalvlaran/conex/dsu"
	"github.com/katalvlaran/conex/label"
)

// GroupID groups the rows described by columns: any two rows sharing a
// non-excluded value in any column end up in the same group. It
// implements spec §4.5's bipartite "record <-> value" union, without
// materialising the bipartite graph itself — only the record side ever
// gets a DSU index, and values are folded directly into unions against
// the first row that introduced them.
func GroupID(columns []Column, opts ...Option) (Result, error) {
	o := resolveOptions(opts)
	if err := validate(columns, o); err != nil {
		return Result{}, err
	}

	rows := columns[0].Len()
	d := dsu.New(rows)

	incomparable := make(map[string]struct{}, len(o.Incomparables))
	for v := range o.Incomparables {
		incomparable[normalize(v, o.CaseSensitive)] = struct{}{}
	}

	firstSeen := make(map[string]int)
	var valueMap map[string][]int
	if o.ReturnDetails {
		valueMap = make(map[string][]int)
	}

	for _, col := range columns {
		for r := 0; r < rows; r++ {
			s := normalize(col.canonical(r), o.CaseSensitive)
			if s == "" {
				continue
			}
			if _, skip := incomparable[s]; skip {
				continue
			}

			first, seen := firstSeen[s]
			if !seen {
				firstSeen[s] = r
				continue
			}

			d.Union(dsu.Index(first), dsu.Index(r))
			if o.ReturnDetails {
				if len(valueMap[s]) == 0 {
					valueMap[s] = []int{first}
				}
				valueMap[s] = append(valueMap[s], r)
			}
		}
	}

	// Reuse the same Labeller the graph driver uses (spec §2: the
	// Entity-Resolution Driver "reuses components 1-3" — DSF, Interner,
	// and Labeller). Rows are already a dense [0,R) index space, so no
	// interning step is needed; edgeU/edgeV are nil since entityres has
	// no per-edge labels to produce, only the node-label/sizes side.
	base := label.Compute(d, nil, nil, true)

	groupIDs := make([]int, rows)
	renumbered := make(map[uint64]int)
	var sizes []int
	for r := 0; r < rows; r++ {
		baseLabel := base.NodeLabel[r]
		if base.Sizes[baseLabel-1] < o.MinGroupSize {
			groupIDs[r] = 0
			continue
		}

		final, assigned := renumbered[baseLabel]
		if !assigned {
			sizes = append(sizes, 0)
			final = len(sizes)
			renumbered[baseLabel] = final
		}
		groupIDs[r] = final
		sizes[final-1]++
	}

	result := Result{
		GroupIDs:   groupIDs,
		NGroups:    len(sizes),
		GroupSizes: sizes,
	}
	if o.ReturnDetails {
		for k, v := range valueMap {
			if len(v) < 2 {
				delete(valueMap, k)
			}
		}
		result.ValueMap = valueMap
	}

	return result, nil
}

func validate(columns []Column, o Options) error {
	if len(columns) == 0 {
		return ErrInvalidShape
	}
	if o.MinGroupSize < 1 {
		return ErrInvalidMinGroupSize
	}

	rows := columns[0].Len()
	for _, col := range columns {
		if col.Len() != rows {
			return ErrColumnLengthMismatch
		}
	}

	return nil
}
