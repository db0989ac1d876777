package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdetect/model"
)

func TestLinear_Build(t *testing.T) {
	m := model.NewLinear()
	x1 := m.AddVar(model.Binary)
	x2 := m.AddVar(model.Continuous)
	x3 := m.AddVar(model.Integer)

	c, err := m.AddCons(x3, x1, x1) // duplicates collapse, order normalizes
	require.NoError(t, err)
	assert.Equal(t, 0, c)
	assert.Equal(t, []int{x1, x3}, m.ConsVars(c))

	assert.Equal(t, 1, m.NConss())
	assert.Equal(t, 3, m.NVars())
	assert.Equal(t, model.Binary, m.Kind(x1))
	assert.Equal(t, model.Continuous, m.Kind(x2))

	_, err = m.AddCons(7)
	assert.ErrorIs(t, err, model.ErrVarNotFound)
}

func TestLinear_Fix(t *testing.T) {
	m := model.NewLinear()
	v := m.AddVar(model.Continuous)

	assert.True(t, m.Relevant(v))
	require.NoError(t, m.Fix(v))
	assert.False(t, m.Relevant(v))
	assert.ErrorIs(t, m.Fix(9), model.ErrVarNotFound)
}
