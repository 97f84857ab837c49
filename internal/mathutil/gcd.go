// Package mathutil provides small integer arithmetic helpers.
package mathutil

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. Operands are swapped so the larger is reduced first; the result
// sign follows from that ordering and is not normalized to absolute value.
func GCD(a, b int) int {
	if a < b {
		a, b = b, a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCDAll folds GCD over values, seeded from the first element. The boolean is
// false when values is empty and the result is undefined.
func GCDAll(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}

	res := values[0]
	for _, v := range values {
		res = GCD(res, v)
	}
	return res, true
}
