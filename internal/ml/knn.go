package ml

import (
	"errors"
	"sort"
)

func init() {
	RegisterLearner(candidateKNN, func(p Params) Learner {
		return &KNN{K: p["neighbors"]}
	})
}

// KNN is a k-nearest-neighbours classifier. It memorizes the standardized
// training set and votes over the k closest rows by squared Euclidean
// distance.
type KNN struct {
	K          int
	NumClasses int
	X          [][]float64
	Y          []int
}

func (k *KNN) Fit(x [][]float64, y []int, classes int) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.New("knn: empty or misaligned training data")
	}
	k.NumClasses = classes
	k.X = make([][]float64, len(x))
	k.Y = make([]int, len(y))
	for i := range x {
		row := make([]float64, len(x[i]))
		copy(row, x[i])
		k.X[i] = row
	}
	copy(k.Y, y)
	return nil
}

func (k *KNN) Predict(x []float64) int {
	if len(k.X) == 0 {
		return 0
	}

	type neighbour struct {
		dist  float64
		index int
	}
	neighbours := make([]neighbour, len(k.X))
	for i, row := range k.X {
		var d float64
		for j := range row {
			diff := row[j] - x[j]
			d += diff * diff
		}
		neighbours[i] = neighbour{dist: d, index: i}
	}
	sort.Slice(neighbours, func(a, b int) bool {
		if neighbours[a].dist != neighbours[b].dist {
			return neighbours[a].dist < neighbours[b].dist
		}
		return neighbours[a].index < neighbours[b].index
	})

	kk := k.K
	if kk < 1 {
		kk = 1
	}
	if kk > len(neighbours) {
		kk = len(neighbours)
	}

	votes := make([]int, k.NumClasses)
	for _, nb := range neighbours[:kk] {
		votes[k.Y[nb.index]]++
	}
	return majority(votes)
}
