package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genemodule/subtyper/classify"
	"github.com/genemodule/subtyper/expr"
	"github.com/genemodule/subtyper/simplicity"
	"github.com/genemodule/subtyper/subtype"
)

func inputs(t *testing.T) (*expr.Matrix, *expr.ModuleSet) {
	t.Helper()
	m, err := expr.NewMatrix(
		[]string{"ga", "gb", "gc"},
		[]string{"s1", "s2", "s3", "s4"},
		[]float64{
			7, 1, 4, 2, // ga
			2, 8, 4, 1, // gb
			1, 2, 1, 9, // gc
		})
	require.NoError(t, err)

	mods := expr.NewModuleSet()
	require.NoError(t, mods.Add("Basal", []string{"ga"}))
	require.NoError(t, mods.Add("Classical", []string{"gb"}))
	require.NoError(t, mods.Add("Stromal", []string{"gc"}))

	return m, mods
}

// TestRun_EndToEnd wires all three stages and sanity-checks the bundle.
func TestRun_EndToEnd(t *testing.T) {
	m, mods := inputs(t)

	res, err := classify.Run(m, mods,
		classify.WithPreferredOrder([]string{"Classical", "Basal"}),
		classify.WithMethod(simplicity.Entropy))
	require.NoError(t, err)

	assert.Equal(t, subtype.ModuleOrder{"Classical", "Basal", "Stromal"}, res.Order)

	a := res.Arrangement
	require.NotNil(t, a)
	rows, cols := a.Matrix.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Len(t, a.Palette, 100)
	assert.Len(t, a.Annotation, 4)
	assert.True(t, a.Table.HasSimplicity())

	// First displayed sample leads the first module group present.
	top, err := a.Table.TopCluster(0)
	require.NoError(t, err)
	assert.Equal(t, "Classical", top)
	first, err := a.Table.Sample(0)
	require.NoError(t, err)
	assert.Equal(t, "s2", first, "most confident Classical call leads")
}

// TestRun_ErrorPropagation: stage sentinels surface through the façade.
func TestRun_ErrorPropagation(t *testing.T) {
	_, mods := inputs(t)

	_, err := classify.Run(nil, mods)
	assert.ErrorIs(t, err, subtype.ErrNilMatrix)

	m, _ := inputs(t)
	_, err = classify.Run(m, nil)
	assert.ErrorIs(t, err, subtype.ErrEmptyModuleSet)

	_, err = classify.Run(m, mods, classify.WithMethod(simplicity.Method(99)))
	assert.ErrorIs(t, err, simplicity.ErrUnknownMethod)
}

// TestRun_Deterministic: two invocations with identical inputs produce
// identical score tables and annotation bundles.
func TestRun_Deterministic(t *testing.T) {
	for _, method := range []simplicity.Method{simplicity.Gap, simplicity.Entropy} {
		m1, mods1 := inputs(t)
		m2, mods2 := inputs(t)

		r1, err := classify.Run(m1, mods1, classify.WithMethod(method))
		require.NoError(t, err)
		r2, err := classify.Run(m2, mods2, classify.WithMethod(method))
		require.NoError(t, err)

		assert.Equal(t, r1.Order, r2.Order)
		assert.Equal(t, r1.Arrangement.Order, r2.Arrangement.Order)
		assert.Equal(t, r1.Arrangement.Palette, r2.Arrangement.Palette)
		assert.Equal(t, r1.Arrangement.Annotation, r2.Arrangement.Annotation)
		assert.Equal(t, r1.Arrangement.Table.Samples(), r2.Arrangement.Table.Samples())

		t1, t2 := r1.Arrangement.Table, r2.Arrangement.Table
		s1, err := t1.SimplicityScores()
		require.NoError(t, err)
		s2, err := t2.SimplicityScores()
		require.NoError(t, err)
		assert.Equal(t, s1, s2)

		// No NaN in this fixture, so raw matrix data compares exactly.
		assert.Equal(t, r1.Arrangement.Matrix.RawMatrix().Data,
			r2.Arrangement.Matrix.RawMatrix().Data)
	}
}
