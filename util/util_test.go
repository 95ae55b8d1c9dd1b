package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMod(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Mod(9, 7))
	assert.Equal(6, Mod(-1, 7))
	assert.Equal(0, Mod(-14, 7))
	assert.Equal(11, Mod(-13, 12))
}

func TestFloorDiv(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, FloorDiv(9, 7))
	assert.Equal(-1, FloorDiv(-1, 7))
	assert.Equal(-2, FloorDiv(-14, 7))
	assert.Equal(-2, FloorDiv(-13, 12))
	assert.Equal(0, FloorDiv(0, 12))
}

func TestAbsAndSign(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Abs(-3))
	assert.Equal(3, Abs(3))
	assert.Equal(-1, Sign(-3))
	assert.Equal(1, Sign(0))
}

func TestGetSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetSortedKeys(m))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]uint8{1, 2, 3}))
}
