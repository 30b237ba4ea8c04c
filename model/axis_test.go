package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearAxisProjection(t *testing.T) {
	a := NewLinearAxis("x")
	a.Include(0, 10)
	a.SetScreenRange(100, 200)

	assert.Equal(t, 100.0, a.Project(0))
	assert.Equal(t, 150.0, a.Project(5))
	assert.Equal(t, 200.0, a.Project(10))
}

func TestLinearAxisInvertedScreenRange(t *testing.T) {
	// ось Y: экранные пиксели растут вниз
	a := NewLinearAxis("y")
	a.Include(0, 10)
	a.SetScreenRange(560, 40)

	assert.Equal(t, 560.0, a.Project(0))
	assert.Equal(t, 40.0, a.Project(10))
}

func TestLinearAxisIdentityWithoutRange(t *testing.T) {
	a := NewLinearAxis("x")
	assert.Equal(t, 7.0, a.Project(7))

	a.Include(3, 3)
	a.SetScreenRange(0, 100)
	// вырожденный диапазон тоже проецируется тождественно
	assert.Equal(t, 3.0, a.Project(3))
}

func TestLinearAxisIncludeAccumulates(t *testing.T) {
	a := NewLinearAxis("x")
	a.Include(5, 10)
	a.Include(-2, 7)
	a.Include(20, 1) // перепутанный порядок нормализуется

	min, max, ok := a.Range()
	assert.True(t, ok)
	assert.Equal(t, -2.0, min)
	assert.Equal(t, 20.0, max)
}

func TestLinearAxisResetRange(t *testing.T) {
	a := NewLinearAxis("x")
	a.Include(1, 2)
	a.ResetRange()

	_, _, ok := a.Range()
	assert.False(t, ok)
}
