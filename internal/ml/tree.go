package ml

import (
	"math"
	"math/rand"
	"sort"
)

// Node is one CART decision-tree node. Exported fields keep fitted trees
// gob-encodable inside a serialized pipeline.
type Node struct {
	Leaf      bool
	Class     int
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
}

type treeConfig struct {
	maxDepth     int // 0 = unlimited
	minSplit     int
	classes      int
	randomSplits bool // extra-trees style: one uniform threshold per feature
}

func (n *Node) predict(x []float64) int {
	for !n.Leaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Class
}

// growTree builds a tree on the rows selected by idx, sampling
// sqrt(features) candidate features at every split.
func growTree(x [][]float64, y []int, idx []int, depth int, cfg treeConfig, rng *rand.Rand) *Node {
	counts := classCounts(y, idx, cfg.classes)
	if len(idx) < cfg.minSplit || isPure(counts) || (cfg.maxDepth > 0 && depth >= cfg.maxDepth) {
		return &Node{Leaf: true, Class: majority(counts)}
	}

	nFeatures := len(x[0])
	m := int(math.Sqrt(float64(nFeatures)))
	if m < 1 {
		m = 1
	}

	bestGain := 0.0
	bestFeature := -1
	var bestThreshold float64
	parent := gini(counts, len(idx))

	for _, f := range rng.Perm(nFeatures)[:m] {
		for _, th := range splitThresholds(x, idx, f, cfg.randomSplits, rng) {
			gain := parent - splitImpurity(x, y, idx, f, th, cfg.classes)
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = th
			}
		}
	}

	if bestFeature < 0 {
		return &Node{Leaf: true, Class: majority(counts)}
	}

	var left, right []int
	for _, i := range idx {
		if x[i][bestFeature] <= bestThreshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &Node{Leaf: true, Class: majority(counts)}
	}

	return &Node{
		Feature:   bestFeature,
		Threshold: bestThreshold,
		Left:      growTree(x, y, left, depth+1, cfg, rng),
		Right:     growTree(x, y, right, depth+1, cfg, rng),
	}
}

// splitThresholds yields candidate thresholds for a feature: midpoints of
// consecutive distinct values, or a single uniform draw for random splits.
func splitThresholds(x [][]float64, idx []int, f int, random bool, rng *rand.Rand) []float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	values := make([]float64, 0, len(idx))
	for _, i := range idx {
		v := x[i][f]
		values = append(values, v)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return nil
	}
	if random {
		return []float64{lo + rng.Float64()*(hi-lo)}
	}

	sort.Float64s(values)
	var out []float64
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			out = append(out, (values[i]+values[i-1])/2)
		}
	}
	return out
}

func splitImpurity(x [][]float64, y []int, idx []int, f int, th float64, classes int) float64 {
	leftCounts := make([]int, classes)
	rightCounts := make([]int, classes)
	nl, nr := 0, 0
	for _, i := range idx {
		if x[i][f] <= th {
			leftCounts[y[i]]++
			nl++
		} else {
			rightCounts[y[i]]++
			nr++
		}
	}
	n := float64(nl + nr)
	return float64(nl)/n*gini(leftCounts, nl) + float64(nr)/n*gini(rightCounts, nr)
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	imp := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		imp -= p * p
	}
	return imp
}

func classCounts(y []int, idx []int, classes int) []int {
	counts := make([]int, classes)
	for _, i := range idx {
		counts[y[i]]++
	}
	return counts
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// majority breaks ties toward the lower class index, keeping predictions
// deterministic.
func majority(counts []int) int {
	best := 0
	for c, n := range counts {
		if n > counts[best] {
			best = c
		}
	}
	return best
}
