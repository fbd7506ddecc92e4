package graph

const (
	// defaultHardLimitBytes is the default ceiling on the estimated DSU
	// allocation before a call fails with ErrCapacityExceeded.
	defaultHardLimitBytes = 32 << 30 // 32 GiB

	// defaultAdvisoryThresholdBytes triggers a one-time OnAdvisory call
	// when crossed, without failing the call (spec §7: "semantic
	// warnings").
	defaultAdvisoryThresholdBytes = 8 << 30 // 8 GiB

	// bytesPerNode is the fixed per-node factor of the memory estimate
	// (spec §4.4: "estimated_bytes ~= 12 * N"). The DSU's parent and
	// rank arrays take 9 bytes per node; the interner's forward and
	// inverse tables are not counted separately.
	bytesPerNode = 12
)

// Edge is an unordered pair of NodeIds. NodeIds are unsigned 64-bit
// integers >= 1; self-loops (U == V) are accepted and contribute no
// merge; duplicate edges are idempotent.
type Edge struct {
	U, V uint64
}

// Result is the "summary" packaging of a connectivity computation:
// a label per original node ID, the size of every component, and the
// component count K.
type Result struct {
	// NodeLabel maps each distinct node ID observed to its component
	// label. In compressed mode (the default) labels are in [1,K];
	// in uncompressed mode they are opaque, call-local root indices.
	NodeLabel map[uint64]uint64

	// Sizes holds the size of every component, in order of first
	// discovery while scanning the dense index space 0..N-1.
	// sum(Sizes) == len(NodeLabel).
	Sizes []int

	// K is the number of distinct components.
	K int
}

// Options configures a connectivity computation. Use the With*
// constructors, following the functional-options shape used throughout
// this codebase's ancestry.
type Options struct {
	// Compress selects canonical [1,K] labelling (true, the default)
	// over raw, call-local root-index labelling (false).
	Compress bool

	// NNodes, if non-nil, is an upper bound on the node-ID universe
	// used purely for validation: if the largest node ID observed
	// exceeds NNodes, the call fails with ErrInvalidNodeRange.
	// Allocation always uses the dense interned count, never NNodes
	// (spec §9 open question: "n_nodes parameter semantics").
	NNodes *uint64

	// HardLimitBytes caps the estimated DSU allocation; see doc.go.
	HardLimitBytes uint64

	// AdvisoryThresholdBytes is the softer ceiling that triggers
	// OnAdvisory without failing the call.
	AdvisoryThresholdBytes uint64

	// Parallel opts into a sharded union pass over GOMAXPROCS workers
	// (spec §5: an optional optimization; must not change semantics).
	Parallel bool

	// OnAdvisory, if non-nil, is invoked at most once per call when
	// AdvisoryThresholdBytes is crossed but HardLimitBytes is not.
	OnAdvisory func(message string)
}

// Option configures Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Compress:               true,
		NNodes:                 nil,
		HardLimitBytes:         defaultHardLimitBytes,
		AdvisoryThresholdBytes: defaultAdvisoryThresholdBytes,
		Parallel:               false,
		OnAdvisory:             nil,
	}
}

// WithCompress selects compressed ([1,K]) vs. uncompressed (raw root
// index) component labelling.
func WithCompress(compress bool) Option {
	return func(o *Options) { o.Compress = compress }
}

// WithNNodes sets the validation-only upper bound on node IDs.
func WithNNodes(n uint64) Option {
	return func(o *Options) { o.NNodes = &n }
}

// WithHardLimitBytes overrides the default 32 GiB allocation ceiling.
func WithHardLimitBytes(n uint64) Option {
	return func(o *Options) { o.HardLimitBytes = n }
}

// WithAdvisoryThresholdBytes overrides the default 8 GiB advisory
// threshold.
func WithAdvisoryThresholdBytes(n uint64) Option {
	return func(o *Options) { o.AdvisoryThresholdBytes = n }
}

// WithParallel opts into the sharded union pass.
func WithParallel(parallel bool) Option {
	return func(o *Options) { o.Parallel = parallel }
}

// WithOnAdvisory registers a one-time advisory callback.
func WithOnAdvisory(fn func(message string)) Option {
	return func(o *Options) { o.OnAdvisory = fn }
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
