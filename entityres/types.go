package entityres

import "strconv"

type columnKind int

const (
	kindString columnKind = iota
	kindInt
	kindFloat
)

// Column is a tagged variant over the three value types spec §4.5
// allows: strings, integers, and floats. Construct one with
// StringColumn, IntColumn, or FloatColumn.
type Column struct {
	kind    columnKind
	strings []string
	ints    []int64
	floats  []float64
}

// StringColumn wraps a column of string values, compared as-is.
func StringColumn(values []string) Column {
	return Column{kind: kindString, strings: values}
}

// IntColumn wraps a column of integer values, normalised to their
// decimal string form.
func IntColumn(values []int64) Column {
	return Column{kind: kindInt, ints: values}
}

// FloatColumn wraps a column of float values, normalised via
// strconv.FormatFloat(f, 'g', -1, 64) — the shortest decimal string
// guaranteed by strconv to round-trip to the same float64 bit pattern,
// which is what makes two equal floats always normalise identically
// regardless of how they were originally written.
func FloatColumn(values []float64) Column {
	return Column{kind: kindFloat, floats: values}
}

// Len returns the column's row count.
func (c Column) Len() int {
	switch c.kind {
	case kindInt:
		return len(c.ints)
	case kindFloat:
		return len(c.floats)
	default:
		return len(c.strings)
	}
}

// canonical returns row i's canonical string form.
func (c Column) canonical(i int) string {
	switch c.kind {
	case kindInt:
		return strconv.FormatInt(c.ints[i], 10)
	case kindFloat:
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64)
	default:
		return c.strings[i]
	}
}

// Result is the packaged output of GroupID.
type Result struct {
	// GroupIDs holds one entry per input row: 0 if that row's
	// component has fewer than MinGroupSize rows, otherwise a dense
	// label in [1, NGroups].
	GroupIDs []int

	// NGroups is the number of distinct non-zero group labels.
	NGroups int

	// GroupSizes holds the size of every non-zero group, indexed by
	// label-1; len(GroupSizes) == NGroups.
	GroupSizes []int

	// ValueMap holds, for every value that produced at least one
	// merge (i.e. appeared in two or more rows), the list of row
	// indices it connected. Populated only when ReturnDetails is set;
	// nil otherwise, since it can be the largest part of the result
	// for wide, high-cardinality inputs.
	ValueMap map[string][]int
}

// Options configures a GroupID call. Use the With* constructors.
type Options struct {
	// Incomparables is the set of canonical values to ignore
	// entirely, in addition to the empty string (always excluded).
	// The default set mirrors common missing-value sentinels.
	Incomparables map[string]struct{}

	// CaseSensitive, if false, ASCII-lowercases every canonical value
	// and every Incomparables entry before comparison. The default is
	// true (no folding). Unicode case-folding is out of scope (spec §9).
	CaseSensitive bool

	// MinGroupSize is the smallest component size that receives a
	// non-zero group label; smaller components receive 0. Must be
	// >= 1.
	MinGroupSize int

	// ReturnDetails opts into populating Result.ValueMap.
	ReturnDetails bool
}

// Option configures Options.
type Option func(*Options)

func defaultIncomparables() map[string]struct{} {
	return map[string]struct{}{
		"NA":      {},
		"NULL":    {},
		"Unknown": {},
	}
}

func defaultOptions() Options {
	return Options{
		Incomparables: defaultIncomparables(),
		CaseSensitive: true,
		MinGroupSize:  1,
		ReturnDetails: false,
	}
}

// WithIncomparables overrides the default incomparable-value set. The
// empty string is always excluded regardless of this setting.
func WithIncomparables(values ...string) Option {
	return func(o *Options) {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		o.Incomparables = set
	}
}

// WithCaseSensitive toggles ASCII case-folding of values and
// incomparables before comparison.
func WithCaseSensitive(sensitive bool) Option {
	return func(o *Options) { o.CaseSensitive = sensitive }
}

// WithMinGroupSize sets the minimum component size that receives a
// non-zero group label.
func WithMinGroupSize(n int) Option {
	return func(o *Options) { o.MinGroupSize = n }
}

// WithReturnDetails opts into populating Result.ValueMap.
func WithReturnDetails(enabled bool) Option {
	return func(o *Options) { o.ReturnDetails = enabled }
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
