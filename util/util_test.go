package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModWrapsNegatives(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Mod(12, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(1, Mod(-23, 12))
	assert.Equal(5, Mod(29, 12))
}

func TestFloorDivPairsWithMod(t *testing.T) {
	assert := assert.New(t)
	for n := -40; n <= 40; n++ {
		assert.Equal(n, FloorDiv(n, 12)*12+Mod(n, 12), "n=%d", n)
	}
	assert.Equal(-1, FloorDiv(-1, 12))
	assert.Equal(0, FloorDiv(11, 12))
	assert.Equal(1, FloorDiv(12, 12))
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Abs(-3))
	assert.Equal(3, Abs(3))
}
