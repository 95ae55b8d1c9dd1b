package bitindex

import (
	"math/bits"
	"testing"

	"github.com/jsphweid/intervaldex/interval"
	"github.com/stretchr/testify/assert"
)

func TestExactTableHasOneBitPerNotation(t *testing.T) {
	assert := assert.New(t)
	seen := make(map[uint64]string)
	for _, n := range Notations() {
		bit := Bit(n, Exact)
		assert.Equal(1, bits.OnesCount64(bit), n)
		_, dup := seen[bit]
		assert.False(dup, n)
		seen[bit] = n
	}
	assert.LessOrEqual(len(seen), 64)
	assert.Contains(Notations(), "M13")
	assert.Contains(Notations(), "P15")
}

func TestEnharmonicTableSharesBits(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Bit("M3", Enharmonic), Bit("d4", Enharmonic))
	assert.Equal(Bit("A4", Enharmonic), Bit("d5", Enharmonic))
	assert.Equal(Bit("P1", Enharmonic), Bit("d2", Enharmonic))
	assert.NotEqual(Bit("M3", Exact), Bit("d4", Exact))
	assert.NotEqual(Bit("M2", Enharmonic), Bit("M9", Enharmonic))
}

func TestUnknownNotationHasNoBit(t *testing.T) {
	assert := assert.New(t)
	assert.Zero(Bit("X3", Exact))
	assert.Zero(Bit("M16", Exact))
	assert.Zero(Bit("-M3", Exact))
	assert.Zero(Bit("-M3", Enharmonic))
	assert.Equal(Bit("P5", Exact), Mask([]string{"P5", "nonsense"}, Exact))
}

func TestEnharmonicBitIgnoresSpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Bit("P5", Enharmonic), Bit("AA4", Enharmonic))
	assert.Equal(Bit("A4", Enharmonic), Bit("dd6", Enharmonic))
	assert.Equal(Bit("M6", Enharmonic), Bit("AA5", Enharmonic))
	assert.Equal(uint64(1)<<26, Bit("M16", Enharmonic))
	assert.Zero(Bit("AA4", Exact))
}

func TestSignedNotationIsCanonicalised(t *testing.T) {
	assert.Equal(t, Bit("M3", Exact), Bit("+M3", Exact))
}

func TestMaskIsMonotonic(t *testing.T) {
	small := []string{"P1", "M3", "P5"}
	large := []string{"P1", "M2", "M3", "P4", "P5", "M6", "M7"}
	for _, mode := range []Mode{Exact, Enharmonic} {
		a, b := Mask(small, mode), Mask(large, mode)
		assert.Equal(t, a, a&b, mode.String())
	}
}

func TestMaskOf(t *testing.T) {
	intervals := []interval.Interval{interval.MustParse("P1"), interval.MustParse("m3")}
	assert.Equal(t, Mask([]string{"P1", "m3"}, Exact), MaskOf(intervals, Exact))
	assert.Equal(t, uint64(1|1<<3), MaskOf(intervals, Enharmonic))
}

func TestParseMode(t *testing.T) {
	assert := assert.New(t)
	m, err := ParseMode("enharmonic")
	assert.NoError(err)
	assert.Equal(Enharmonic, m)
	m, err = ParseMode("")
	assert.NoError(err)
	assert.Equal(Exact, m)
	_, err = ParseMode("fuzzy")
	assert.Error(err)
}
