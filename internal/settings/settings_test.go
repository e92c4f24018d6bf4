package settings

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyBonusKey(t *testing.T) {
	assert.Equal(t, "daily_bonus_user-1_2025-06-02", DailyBonusKey("user-1", "2025-06-02"))
}

func TestDecodeLegacyBonus(t *testing.T) {
	// Legacy writers stored the raw float bits as an integer string.
	legacy := strconv.FormatUint(math.Float64bits(5.0), 10)
	v, ok := DecodeLegacyBonus(legacy)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)

	fractional := strconv.FormatUint(math.Float64bits(2.5), 10)
	v, ok = DecodeLegacyBonus(fractional)
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	// Canonical decimal strings are never mistaken for bit patterns.
	_, ok = DecodeLegacyBonus("5")
	assert.False(t, ok)
	_, ok = DecodeLegacyBonus("2.5")
	assert.False(t, ok)
	_, ok = DecodeLegacyBonus("0")
	assert.False(t, ok)
	_, ok = DecodeLegacyBonus("not a number")
	assert.False(t, ok)
}

func TestEncodeBonusCanonical(t *testing.T) {
	assert.Equal(t, "5", encodeBonus(5.0))
	assert.Equal(t, "2.5", encodeBonus(2.5))
	assert.Equal(t, "0", encodeBonus(0))
}
