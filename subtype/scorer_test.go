package subtype_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genemodule/subtyper/expr"
	"github.com/genemodule/subtyper/subtype"
)

// mustMatrix builds a labeled matrix or fails the test.
func mustMatrix(t *testing.T, genes, samples []string, data []float64) *expr.Matrix {
	t.Helper()
	m, err := expr.NewMatrix(genes, samples, data)
	require.NoError(t, err)

	return m
}

// mustModules builds a module set from name/genes pairs in order.
func mustModules(t *testing.T, pairs ...any) *expr.ModuleSet {
	t.Helper()
	s := expr.NewModuleSet()
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, s.Add(pairs[i].(string), pairs[i+1].([]string)))
	}

	return s
}

// TestScore_MeanOverModuleGenes pins the reference case: a module fully
// containing genes g1=[2,4], g2=[6,8] scores the sample column [2,6] as 4.
func TestScore_MeanOverModuleGenes(t *testing.T) {
	m := mustMatrix(t,
		[]string{"g1", "g2"}, []string{"s1", "s2"},
		[]float64{
			2, 4, // g1
			6, 8, // g2
		})
	mods := mustModules(t, "M", []string{"g1", "g2"})

	table, order, err := subtype.Score(m, mods)
	require.NoError(t, err)
	assert.Equal(t, subtype.ModuleOrder{"M"}, order)

	v, err := table.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Valid)
	assert.Equal(t, 4.0, v.Float64)

	v, err = table.At(1, 0)
	require.NoError(t, err)
	require.True(t, v.Valid)
	assert.Equal(t, 6.0, v.Float64)
}

// TestScore_InputErrors verifies fail-fast preconditions.
func TestScore_InputErrors(t *testing.T) {
	m := mustMatrix(t, []string{"g1"}, []string{"s1"}, []float64{1})

	_, _, err := subtype.Score(nil, mustModules(t, "M", []string{"g1"}))
	assert.ErrorIs(t, err, subtype.ErrNilMatrix)

	_, _, err = subtype.Score(m, nil)
	assert.ErrorIs(t, err, subtype.ErrEmptyModuleSet)

	_, _, err = subtype.Score(m, expr.NewModuleSet())
	assert.ErrorIs(t, err, subtype.ErrEmptyModuleSet)
}

// TestScore_TopClusterProperties checks that every call is a member of
// ModuleOrder holding the (tie-broken) maximum defined score.
func TestScore_TopClusterProperties(t *testing.T) {
	m := mustMatrix(t,
		[]string{"a", "b", "c"}, []string{"s1", "s2", "s3"},
		[]float64{
			5, 1, 3, // a
			1, 4, 3, // b
			0, 0, 0, // c
		})
	mods := mustModules(t,
		"A", []string{"a"},
		"B", []string{"b"},
		"C", []string{"c"},
	)

	table, order, err := subtype.Score(m, mods, subtype.WithPreferredOrder(nil))
	require.NoError(t, err)
	assert.Equal(t, subtype.ModuleOrder{"A", "B", "C"}, order)

	for i := 0; i < table.Len(); i++ {
		top, err := table.TopCluster(i)
		require.NoError(t, err)
		k := order.Index(top)
		require.GreaterOrEqual(t, k, 0, "TopCluster must be a member of ModuleOrder")

		chosen, err := table.At(i, k)
		require.NoError(t, err)
		require.True(t, chosen.Valid)
		row, err := table.RowScores(i)
		require.NoError(t, err)
		for j, v := range row {
			if !v.Valid {
				continue
			}
			assert.LessOrEqual(t, v.Float64, chosen.Float64)
			if v.Float64 == chosen.Float64 {
				assert.GreaterOrEqual(t, j, k, "ties must break to the earliest ModuleOrder position")
			}
		}
	}

	// s3 ties A and B at 3: A wins by order position.
	top, err := table.TopCluster(2)
	require.NoError(t, err)
	assert.Equal(t, "A", top)
}

// TestScore_PreferredOrder verifies ModuleOrder resolution: preferred
// names lead, the rest keep insertion order, unknown names are skipped.
func TestScore_PreferredOrder(t *testing.T) {
	m := mustMatrix(t, []string{"a", "b"}, []string{"s1"}, []float64{1, 2})
	mods := mustModules(t,
		"A", []string{"a"},
		"B", []string{"b"},
		"C", []string{"a", "b"},
	)

	_, order, err := subtype.Score(m, mods,
		subtype.WithPreferredOrder([]string{"C", "ghost", "A", "C"}))
	require.NoError(t, err)
	assert.Equal(t, subtype.ModuleOrder{"C", "A", "B"}, order)
}

// TestScore_MissingData covers the missing-value ladder: NaN cells are
// ignored in means, all-NaN yields a missing score, zero gene overlap
// yields a missing column that is never selected as TopCluster.
func TestScore_MissingData(t *testing.T) {
	nan := math.NaN()
	m := mustMatrix(t,
		[]string{"a", "b"}, []string{"s1", "s2"},
		[]float64{
			nan, 2, // a
			4, nan, // b
		})
	mods := mustModules(t,
		"AB", []string{"a", "b"},
		"Ghost", []string{"zz"}, // zero overlap with the matrix
	)

	table, order, err := subtype.Score(m, mods, subtype.WithPreferredOrder([]string{}))
	require.NoError(t, err)
	require.Equal(t, subtype.ModuleOrder{"AB", "Ghost"}, order)

	// NaN is skipped in the mean: s1 averages only b=4, s2 only a=2.
	v, err := table.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Valid)
	assert.Equal(t, 4.0, v.Float64)

	v, err = table.At(1, 0)
	require.NoError(t, err)
	require.True(t, v.Valid)
	assert.Equal(t, 2.0, v.Float64)

	// The zero-overlap module is missing for every sample, never top.
	for i := 0; i < table.Len(); i++ {
		v, err = table.At(i, 1)
		require.NoError(t, err)
		assert.False(t, v.Valid, "zero-overlap module must score missing, not zero")

		top, err := table.TopCluster(i)
		require.NoError(t, err)
		assert.Equal(t, "AB", top)
	}
}

// TestScore_Unclassified pins the all-missing decision: a sample with no
// defined module score is called Unclassified rather than erroring.
func TestScore_Unclassified(t *testing.T) {
	nan := math.NaN()
	m := mustMatrix(t,
		[]string{"a"}, []string{"s1", "s2"},
		[]float64{1, nan})
	mods := mustModules(t, "A", []string{"a"})

	table, _, err := subtype.Score(m, mods)
	require.NoError(t, err)

	top, err := table.TopCluster(0)
	require.NoError(t, err)
	assert.Equal(t, "A", top)

	top, err = table.TopCluster(1)
	require.NoError(t, err)
	assert.Equal(t, subtype.Unclassified, top)
}

// TestScore_Deterministic runs the scorer twice on identical inputs and
// expects identical tables.
func TestScore_Deterministic(t *testing.T) {
	m := mustMatrix(t,
		[]string{"a", "b", "c"}, []string{"s1", "s2"},
		[]float64{1, 2, 3, 4, 5, 6})
	mods := mustModules(t,
		"M1", []string{"a", "b"},
		"M2", []string{"b", "c"},
	)

	t1, o1, err := subtype.Score(m, mods)
	require.NoError(t, err)
	t2, o2, err := subtype.Score(m, mods)
	require.NoError(t, err)

	assert.Equal(t, o1, o2)
	assert.Equal(t, t1.Samples(), t2.Samples())
	for i := 0; i < t1.Len(); i++ {
		r1, err := t1.RowScores(i)
		require.NoError(t, err)
		r2, err := t2.RowScores(i)
		require.NoError(t, err)
		assert.Equal(t, r1, r2)

		top1, err := t1.TopCluster(i)
		require.NoError(t, err)
		top2, err := t2.TopCluster(i)
		require.NoError(t, err)
		assert.Equal(t, top1, top2)
	}
}
