package fitcalc

import (
	"fmt"
	"math"
)

const (
	cmPerInch = 2.54
	lbsPerKg  = 2.20462
)

// Conversions round to whole units (lbs→kg keeps two decimals), so a round
// trip drifts: CmToInches(x) is within 1.27cm of x, and converting back
// rounds again, so InchesToCm(CmToInches(x)) is within 1.77cm.

// CmToInches returns round(cm / 2.54).
func CmToInches(cm float64) (int, error) {
	if err := checkPositive("cm", cm); err != nil {
		return 0, err
	}
	return roundToInt("cm", cm, cm/cmPerInch)
}

// InchesToCm returns round(inches * 2.54).
func InchesToCm(inches float64) (int, error) {
	if err := checkPositive("inches", inches); err != nil {
		return 0, err
	}
	return roundToInt("inches", inches, inches*cmPerInch)
}

// KgToLbs returns round(kg * 2.20462).
func KgToLbs(kg float64) (int, error) {
	if err := checkPositive("kg", kg); err != nil {
		return 0, err
	}
	return roundToInt("kg", kg, kg*lbsPerKg)
}

// LbsToKg returns lbs / 2.20462 rounded to two decimal places.
func LbsToKg(lbs float64) (float64, error) {
	if err := checkPositive("lbs", lbs); err != nil {
		return 0, err
	}
	return roundTo(lbs/lbsPerKg, 2), nil
}

func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s %v: %w", name, v, ErrInvalidMeasurement)
	}
	return nil
}

// maxResult bounds integer results. It matches the INTEGER columns they are
// stored in.
const maxResult = math.MaxInt32

// roundToInt rounds v for an input named name, failing when the result
// doesn't fit in maxResult.
func roundToInt(name string, input, v float64) (int, error) {
	r := math.Round(v)
	if r > maxResult {
		return 0, fmt.Errorf("%s %v: result out of range: %w", name, input, ErrInvalidMeasurement)
	}
	return int(r), nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
