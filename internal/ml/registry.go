package ml

// Learner names referenced by the fixed candidate list. Implementations
// self-register in their init funcs; a name with no registered factory is an
// unavailable candidate, not an error.
const (
	candidateRandomForest = "RandomForest"
	candidateExtraTrees   = "ExtraTrees"
	candidateKNN          = "KNN"
)

// Factory builds an untrained learner from one search-space assignment.
type Factory func(p Params) Learner

var factories = map[string]Factory{}

// RegisterLearner wires a learner implementation into the candidate
// registry. Called from init; not safe for concurrent use afterwards.
func RegisterLearner(name string, f Factory) {
	factories[name] = f
}

// Candidate pairs a learner type with its finite hyperparameter search
// space.
type Candidate struct {
	Name        string
	SearchSpace map[string][]int
}

// Available reports whether the candidate's learner implementation is
// present in this runtime.
func (c Candidate) Available() bool {
	_, ok := factories[c.Name]
	return ok
}

// New constructs an untrained learner for one hyperparameter assignment.
// Only valid when Available.
func (c Candidate) New(p Params) Learner {
	return factories[c.Name](p)
}

// Candidates returns the fixed candidate list in registration order. The
// baseline tree ensemble is compiled into this package, so training can
// never starve even when every optional learner is absent.
func Candidates() []Candidate {
	return []Candidate{
		{
			Name: candidateRandomForest,
			SearchSpace: map[string][]int{
				"trees":     {100, 300},
				"max_depth": {0, 10, 20},
			},
		},
		{
			Name: candidateExtraTrees,
			SearchSpace: map[string][]int{
				"trees":     {200, 400},
				"max_depth": {0, 10, 20},
			},
		},
		{
			Name: candidateKNN,
			SearchSpace: map[string][]int{
				"neighbors": {3, 5, 7},
			},
		},
	}
}
