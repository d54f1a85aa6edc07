package combin

// Factorial returns n! as a uint64.
//
// Exact for 0 <= n <= 20; larger inputs overflow uint64 and are outside the
// useful range of the generators (a 13-vertex pattern is already
// intractable). Negative n returns 0, matching an empty sequence.
func Factorial(n int) uint64 {
	if n < 0 {
		return 0
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}

	return result
}

// Binomial returns C(n, k) as a uint64.
//
// k < 0 or k > n returns 0; k == 0 or k == n returns 1. The multiplicative
// form below divides at every step, so intermediate products stay exact
// (the running product of i consecutive integers is divisible by i!).
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	// Use the smaller complement to shorten the loop.
	if k > n-k {
		k = n - k
	}
	result := uint64(1)
	for i := 1; i <= k; i++ {
		result = result * uint64(n-k+i) / uint64(i)
	}

	return result
}
