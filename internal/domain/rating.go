package domain

import (
	"math"
	"strconv"
)

// MaxRating is the upper bound of the rating scale.
const MaxRating = 5.0

// RoundRating rounds r half-up to one decimal place and clamps it to
// [0, MaxRating].
func RoundRating(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > MaxRating {
		return MaxRating
	}
	return math.Round(r*10) / 10
}

// FormatRating returns the one-decimal display form of a rating,
// e.g. 4.85 → "4.9" and 5 → "5.0".
func FormatRating(r float64) string {
	return strconv.FormatFloat(RoundRating(r), 'f', 1, 64)
}

// RatingBadge returns the rating followed by the review count in
// parentheses, e.g. "4.9 (128)".
func RatingBadge(r float64, reviews int) string {
	if reviews < 0 {
		reviews = 0
	}
	return FormatRating(r) + " (" + strconv.Itoa(reviews) + ")"
}
