package utils

import (
	"math"
	"strconv"
	"strings"
)

func StringToUint64(s string) (uint64, error) {
	num, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return num, nil
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// DivRound divides num by den and rounds the quotient to places decimals.
func DivRound(num, den uint64, places int) float64 {
	if den == 0 {
		return 0
	}
	return Round(float64(num)/float64(den), places)
}
