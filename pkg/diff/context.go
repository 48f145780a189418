package diff

// DefaultMaxDepth bounds recursion for pathologically nested documents.
// Past the limit, subtrees are compared by canonical serialization
// instead of recursing further.
const DefaultMaxDepth = 1000

// WorkingFile is an opaque identity label for one side of the comparison.
type WorkingFile struct {
	Name string `json:"name"`
}

// Config holds the knobs for one comparison run. The four Check flags
// select which diff categories Collect computes; ArraySameOrder switches
// the array comparator between index-wise and set-based semantics.
type Config struct {
	ArraySameOrder bool
	CheckKeys      bool
	CheckTypes     bool
	CheckValues    bool
	CheckArrays    bool
	MaxDepth       int
}

// WorkingContext is the immutable per-run identity: the two document
// names plus the comparison config. It is shared, never mutated, across
// the whole recursive traversal.
type WorkingContext struct {
	FileA  WorkingFile
	FileB  WorkingFile
	Config Config
}

// NewWorkingContext builds a context for comparing fileA against fileB.
func NewWorkingContext(fileA, fileB string, config Config) *WorkingContext {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &WorkingContext{
		FileA:  WorkingFile{Name: fileA},
		FileB:  WorkingFile{Name: fileB},
		Config: config,
	}
}
