package decimal

import "math/big"

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)
)

// smallPow10 caches 10**k for small k, which covers the scales of nearly all
// literals and the default division precision.
var smallPow10 = func() [40]*big.Int {
	var t [40]*big.Int
	t[0] = big.NewInt(1)
	for i := 1; i < len(t); i++ {
		t[i] = new(big.Int).Mul(t[i-1], ten)
	}
	return t
}()

// pow10 returns 10**n. The result must not be modified. Panics if n < 0.
func pow10(n int) *big.Int {
	if n < 0 {
		panic("decimal: negative power of ten")
	}
	if n < len(smallPow10) {
		return smallPow10[n]
	}
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// abs returns a new integer holding |x|.
func abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}
