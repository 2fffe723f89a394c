package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestonraab/cs-575/builder"
	"github.com/prestonraab/cs-575/centrality"
	"github.com/prestonraab/cs-575/core"
)

func stats(m map[string]float64) (mean, std float64) {
	n := float64(len(m))
	for _, v := range m {
		mean += v
	}
	mean /= n
	for _, v := range m {
		std += (v - mean) * (v - mean)
	}
	std = math.Sqrt(std / n)

	return mean, std
}

func TestNilAndEmptyGraphs(t *testing.T) {
	_, err := centrality.Degree(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Eigenvector(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Katz(nil, 0.1, 1)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.PageRank(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)

	empty := core.NewGraph()
	_, err = centrality.Degree(empty)
	assert.ErrorIs(t, err, centrality.ErrEmptyGraph)
	_, err = centrality.Eigenvector(empty)
	assert.ErrorIs(t, err, centrality.ErrEmptyGraph)
	_, err = centrality.Katz(empty, 0.1, 1)
	assert.ErrorIs(t, err, centrality.ErrEmptyGraph)
	_, err = centrality.PageRank(empty)
	assert.ErrorIs(t, err, centrality.ErrEmptyGraph)
}

func TestDegree(t *testing.T) {
	k4, err := builder.Build(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	deg, err := centrality.Degree(k4)
	require.NoError(t, err)
	for id, v := range deg {
		assert.InDelta(t, 1.0, v, 1e-12, "K4 vertex %s", id)
	}

	star, err := builder.Build(nil, nil, builder.Star(3))
	require.NoError(t, err)
	deg, err = centrality.Degree(star)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, deg["0"], 1e-12)
	assert.InDelta(t, 1.0/3, deg["1"], 1e-12)

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("A"))
	deg, err = centrality.Degree(single)
	require.NoError(t, err)
	assert.Equal(t, 0.0, deg["A"])
}

func TestEigenvector_Undirected(t *testing.T) {
	k3, err := builder.Build(nil, nil, builder.Complete(3))
	require.NoError(t, err)
	eig, err := centrality.Eigenvector(k3)
	require.NoError(t, err)
	for _, v := range eig {
		assert.InDelta(t, 1/math.Sqrt(3), v, 1e-4)
	}

	p3, err := builder.Build(nil, nil, builder.Path(3))
	require.NoError(t, err)
	eig, err = centrality.Eigenvector(p3)
	require.NoError(t, err)
	assert.Greater(t, eig["1"], eig["0"], "path center outranks endpoints")
	assert.InDelta(t, eig["0"], eig["2"], 1e-4, "endpoints are symmetric")
}

func TestEigenvector_NotConverged(t *testing.T) {
	p3, err := builder.Build(nil, nil, builder.Path(3))
	require.NoError(t, err)
	_, err = centrality.Eigenvector(p3, centrality.WithMaxIter(1))
	assert.ErrorIs(t, err, centrality.ErrNotConverged)
}

// TestEigenvectorVsKatz_Collapse replays the first homework design problem:
// a directed chain feeding a 3-cycle. Eigenvector centrality assigns
// near-zero scores to the chain (nothing recurrent feeds it), while Katz's
// baseline keeps every score clearly positive.
func TestEigenvectorVsKatz_Collapse(t *testing.T) {
	g, err := builder.FromAdjacencyList(map[string][]string{
		"1": {"2"},
		"2": {"3"},
		"3": {"4"},
		"4": {"5"},
		"5": {"6"},
		"6": {"4"},
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, g.VertexCount(), 6)

	eig, err := centrality.Eigenvector(g, centrality.WithMaxIter(2000))
	require.NoError(t, err)
	katz, err := centrality.Katz(g, 0.1, 1.0)
	require.NoError(t, err)

	nearZero := 0
	for _, v := range eig {
		if v < 1e-3 {
			nearZero++
		}
	}
	assert.GreaterOrEqual(t, nearZero, 3, "chain vertices collapse under eigenvector centrality")

	for id, v := range katz {
		assert.Greater(t, v, 1e-3, "katz[%s]", id)
	}
}

// TestKatzVsPageRank_Hubs replays the second homework design problem: two
// directed hub-and-spoke stars. Katz with small alpha stays approximately
// uniform, while PageRank concentrates on the hubs their spokes vote for.
func TestKatzVsPageRank_Hubs(t *testing.T) {
	g, err := builder.FromAdjacencyList(map[string][]string{
		"h1": {"s1", "s2", "s3"},
		"h2": {"s4", "s5", "s6"},
		"s1": {"h1"}, "s2": {"h1"}, "s3": {"h1"},
		"s4": {"h2"}, "s5": {"h2"}, "s6": {"h2"},
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, g.VertexCount(), 8)

	katz, err := centrality.Katz(g, 0.1, 1.0)
	require.NoError(t, err)
	pr, err := centrality.PageRank(g)
	require.NoError(t, err)

	kMean, kStd := stats(katz)
	assert.Less(t, kStd, 0.2*kMean, "katz approximately uniform")

	pMean, pStd := stats(pr)
	assert.Greater(t, pStd, 0.2*pMean, "pagerank distinguishes hubs")

	maxPR, minPR := math.Inf(-1), math.Inf(1)
	for _, v := range pr {
		maxPR = math.Max(maxPR, v)
		minPR = math.Min(minPR, v)
	}
	assert.Greater(t, maxPR, 2*minPR)
}

func TestKatz_BadAlpha(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Path(3))
	require.NoError(t, err)
	_, err = centrality.Katz(g, 0, 1.0)
	assert.ErrorIs(t, err, centrality.ErrBadAlpha)
}

func TestKatz_SingularSystem(t *testing.T) {
	// Directed 3-cycle with alpha = 1: det(I - A^T) = 1 - 1 = 0.
	g, err := builder.FromAdjacencyList(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	})
	require.NoError(t, err)
	_, err = centrality.Katz(g, 1.0, 1.0)
	assert.ErrorIs(t, err, centrality.ErrSingular)
}

func TestPageRank_SumsToOne(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	pr, err := centrality.PageRank(g)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range pr {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
	// A cycle is vertex-transitive: scores are uniform.
	for _, v := range pr {
		assert.InDelta(t, 0.2, v, 1e-4)
	}
}

// TestPageRank_DanglingVertex: a dangling sink keeps total mass at one.
func TestPageRank_DanglingVertex(t *testing.T) {
	g, err := builder.FromAdjacencyList(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {},
	})
	require.NoError(t, err)
	pr, err := centrality.PageRank(g)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range pr {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
	assert.Greater(t, pr["c"], pr["a"], "sink accumulates chain mass")
}
