package ml

import (
	"errors"
	"math/rand"
)

func init() {
	RegisterLearner(candidateRandomForest, func(p Params) Learner {
		return NewForest(p["trees"], p["max_depth"], false)
	})
	RegisterLearner(candidateExtraTrees, func(p Params) Learner {
		return NewForest(p["trees"], p["max_depth"], true)
	})
}

// Forest is a bagged ensemble of CART trees voting by majority.
// RandomSplits selects extra-trees behaviour: one uniform threshold per
// candidate feature and no bootstrap resampling.
type Forest struct {
	Trees        []*Node
	NumTrees     int
	MaxDepth     int
	NumClasses   int
	RandomSplits bool
	Seed         int64
}

func NewForest(trees, maxDepth int, randomSplits bool) *Forest {
	return &Forest{NumTrees: trees, MaxDepth: maxDepth, RandomSplits: randomSplits, Seed: trainingSeed}
}

func (f *Forest) Fit(x [][]float64, y []int, classes int) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.New("forest: empty or misaligned training data")
	}
	f.NumClasses = classes
	f.Trees = make([]*Node, 0, f.NumTrees)

	cfg := treeConfig{
		maxDepth:     f.MaxDepth,
		minSplit:     2,
		classes:      classes,
		randomSplits: f.RandomSplits,
	}
	rng := rand.New(rand.NewSource(f.Seed))

	n := len(x)
	for t := 0; t < f.NumTrees; t++ {
		idx := make([]int, n)
		if f.RandomSplits {
			for i := range idx {
				idx[i] = i
			}
		} else {
			for i := range idx {
				idx[i] = rng.Intn(n)
			}
		}
		f.Trees = append(f.Trees, growTree(x, y, idx, 0, cfg, rng))
	}
	return nil
}

func (f *Forest) Predict(x []float64) int {
	if len(f.Trees) == 0 {
		return 0
	}
	votes := make([]int, f.NumClasses)
	for _, tree := range f.Trees {
		votes[tree.predict(x)]++
	}
	return majority(votes)
}
