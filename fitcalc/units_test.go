package fitcalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConversions(t *testing.T) {
	in, err := CmToInches(180)
	require.NoError(t, err)
	assert.Equal(t, 71, in)

	cm, err := InchesToCm(71)
	require.NoError(t, err)
	assert.Equal(t, 180, cm)

	lbs, err := KgToLbs(80)
	require.NoError(t, err)
	assert.Equal(t, 176, lbs)

	kg, err := LbsToKg(165)
	require.NoError(t, err)
	assert.Equal(t, 74.84, kg)

	kg, err = LbsToKg(176)
	require.NoError(t, err)
	assert.Equal(t, 79.83, kg)
}

func TestUnitConversions_InvalidInput(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range bad {
		_, err := CmToInches(v)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "CmToInches(%v)", v)
		_, err = InchesToCm(v)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "InchesToCm(%v)", v)
		_, err = KgToLbs(v)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "KgToLbs(%v)", v)
		_, err = LbsToKg(v)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "LbsToKg(%v)", v)
	}
}

func TestUnitConversions_ResultOutOfRange(t *testing.T) {
	for _, v := range []float64{1e300, 1e19, math.MaxFloat64} {
		_, err := CmToInches(v)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "CmToInches(%v)", v)
		_, err = InchesToCm(v)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "InchesToCm(%v)", v)
		_, err = KgToLbs(v)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "KgToLbs(%v)", v)
	}

	// Largest inputs whose results still fit.
	in, err := CmToInches(float64(math.MaxInt32) * cmPerInch)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, in)

	_, err = InchesToCm(float64(math.MaxInt32)/cmPerInch + 1)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)

	// lbs→kg keeps a float result, so large inputs stay valid.
	kg, err := LbsToKg(1e300)
	require.NoError(t, err)
	assert.Positive(t, kg)
}

// The inch value itself is always within half an inch (1.27cm) of the input.
// Converting back rounds to a whole centimetre, which can add up to another
// 0.5cm on top.
func TestCmInchesRoundTrip(t *testing.T) {
	for x := 2.0; x <= 250; x += 0.37 {
		in, err := CmToInches(x)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(float64(in)*cmPerInch-x), 1.27+1e-9, "x=%v", x)

		back, err := InchesToCm(float64(in))
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(float64(back)-x), 1.77+1e-9, "x=%v", x)
	}
}
