package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int64
		div, mod int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{-8, 2, -4, 0},
		{0, 5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.div, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
		assert.Equal(t, tt.mod, floorMod(tt.a, tt.b), "floorMod(%d, %d)", tt.a, tt.b)
	}
}

// TestHijriJDN_EpochOffsets checks the unchecked formula against the
// documented epochs.
func TestHijriJDN_EpochOffsets(t *testing.T) {
	assert.Equal(t, civilEpoch, civil.hijriJDN(1, 1, 1))
	assert.Equal(t, astronomicalEpoch, Converter{Reckoning: Astronomical}.hijriJDN(1, 1, 1))
	assert.Equal(t, civilEpoch+cycleDays, civil.hijriJDN(31, 1, 1))
}
