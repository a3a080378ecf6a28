package util

import "regexp"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Min[T Numeric](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Matches "-12", "-12.5" and the locale form "-12,5". One separator at most.
var negativeNumeral = regexp.MustCompile(`^-\d+([.,]\d+)?$`)

// IsNegativeNumeral reports whether token reads as a negative number
// literal. Such tokens are value tokens, never flags - this is what keeps
// "-5" from being treated as an unknown flag.
func IsNegativeNumeral(token string) bool {
	return negativeNumeral.MatchString(token)
}
