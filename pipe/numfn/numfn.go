// Package numfn provides the small number-theory predicates used to filter
// and classify integer pipelines.
package numfn

import (
	"crypto/rand"
	"math/big"

	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two.
func IsOdd(n int) bool {
	return n%2 != 0
}

// Sign returns -1, 0, or 1 according to the sign of n.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Invert returns n with its sign flipped.
func Invert(n int) int {
	return -n
}

// IsPrime reports whether n is prime by trial division. Values below two
// are not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsProbablyPrime runs rounds of the Miller-Rabin test against n with
// witnesses drawn from the cryptographically strong source. A composite
// answer is always correct; a prime answer errs with probability at most
// 4^-rounds. Values below two are an invalid argument.
func IsProbablyPrime(n, rounds int) (bool, error) {
	const op = "numfn.IsProbablyPrime"
	if n < 2 {
		return false, piperr.InvalidArgument(op, "candidate must be at least 2, got %d", n)
	}
	if rounds <= 0 {
		return false, piperr.InvalidArgument(op, "rounds must be positive, got %d", rounds)
	}
	if n == 2 || n == 3 {
		return true, nil
	}
	if n%2 == 0 {
		return false, nil
	}

	// n-1 = d * 2^s with d odd.
	d, s := n-1, 0
	for d%2 == 0 {
		d, s = d/2, s+1
	}

	bigN := big.NewInt(int64(n))
	span := big.NewInt(int64(n - 3))
	for i := 0; i < rounds; i++ {
		w, err := rand.Int(rand.Reader, span)
		if err != nil {
			return false, err
		}
		witness := w.Int64() + 2
		if !millerRabinRound(bigN, big.NewInt(witness), big.NewInt(int64(d)), s) {
			return false, nil
		}
	}
	return true, nil
}

// millerRabinRound reports whether witness fails to expose n as composite.
func millerRabinRound(n, witness, d *big.Int, s int) bool {
	one := big.NewInt(1)
	nMinusOne := new(big.Int).Sub(n, one)
	x := new(big.Int).Exp(witness, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
	}
	return false
}
