// Package decimal implements exact fixed-point decimal numbers.
//
// A Decimal is an arbitrary-precision integer, the unscaled value, together
// with a non-negative scale giving the number of digits after the decimal
// point: the value is unscaled × 10**-scale. Addition, subtraction and
// multiplication are exact. Division rounds to a caller-chosen number of
// fractional digits, with ties rounded away from zero.
//
// Decimals are values. Every operation returns a new Decimal in canonical
// form, where the scale is as small as possible, so two Decimals denote the
// same number exactly when their unscaled values and scales are equal. The
// zero value is 0.
package decimal

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an exact decimal number. The zero value is 0.
type Decimal struct {
	// unscaled is never modified once a Decimal holds it. nil means 0.
	unscaled *big.Int
	scale    int
}

var zero = new(big.Int)

var (
	// ErrDivisionByZero is returned by Quo when the divisor is zero.
	ErrDivisionByZero = errors.New("decimal: division by zero")
	// ErrNegativePrecision is returned by Quo when the requested precision is
	// negative.
	ErrNegativePrecision = errors.New("decimal: negative precision")
)

// NumberError indicates text that is not a decimal numeral.
type NumberError struct {
	// Text is the rejected input.
	Text string
}

func (err *NumberError) Error() string {
	if strings.TrimSpace(err.Text) == "" {
		return "decimal: empty number"
	}
	return "decimal: invalid number " + strconv.Quote(err.Text)
}

// New returns the canonical Decimal for unscaled × 10**-scale. unscaled is
// copied. Panics if scale is negative.
func New(unscaled *big.Int, scale int) Decimal {
	if scale < 0 {
		panic("decimal: negative scale " + strconv.Itoa(scale))
	}
	if unscaled == nil {
		return Decimal{}
	}
	return canonical(new(big.Int).Set(unscaled), scale)
}

// NewFromInt64 returns the Decimal for an integer.
func NewFromInt64(v int64) Decimal {
	return canonical(big.NewInt(v), 0)
}

// Parse converts text to a Decimal. Surrounding whitespace is ignored. The
// text is an optional sign followed by digits with at most one decimal point,
// with at least one digit in total: "12", "-1.5", ".25", "+3." are all valid.
func Parse(s string) (Decimal, error) {
	str := strings.TrimSpace(s)
	neg := false
	if str != "" {
		switch str[0] {
		case '+':
			str = str[1:]
		case '-':
			neg = true
			str = str[1:]
		}
	}
	ip, fp, _ := strings.Cut(str, ".")
	if len(ip)+len(fp) == 0 || !isDigits(ip) || !isDigits(fp) {
		return Decimal{}, &NumberError{Text: s}
	}
	u, ok := new(big.Int).SetString(ip+fp, 10)
	if !ok {
		// Unreachable after the digit check.
		return Decimal{}, &NumberError{Text: s}
	}
	if neg {
		u.Neg(u)
	}
	return canonical(u, len(fp)), nil
}

// MustParse is like Parse but panics if s is not a valid number. It is
// intended for constants.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// canonical builds a Decimal from u and scale with trailing zeros removed
// from u. u becomes owned by the result.
func canonical(u *big.Int, scale int) Decimal {
	if u.Sign() == 0 {
		return Decimal{}
	}
	var q, r big.Int
	for scale > 0 {
		q.QuoRem(u, ten, &r)
		if r.Sign() != 0 {
			break
		}
		u.Set(&q)
		scale--
	}
	return Decimal{unscaled: u, scale: scale}
}

func (x Decimal) int() *big.Int {
	if x.unscaled == nil {
		return zero
	}
	return x.unscaled
}

// withScale returns x with its unscaled value adjusted to the target scale.
// The result is not canonical. Lowering the scale truncates toward zero.
// Panics if target is negative.
func (x Decimal) withScale(target int) Decimal {
	switch {
	case target < 0:
		panic("decimal: negative scale " + strconv.Itoa(target))
	case target == x.scale:
		return x
	case target > x.scale:
		return Decimal{unscaled: new(big.Int).Mul(x.int(), pow10(target-x.scale)), scale: target}
	default:
		return Decimal{unscaled: new(big.Int).Quo(x.int(), pow10(x.scale-target)), scale: target}
	}
}

// Unscaled returns a copy of x's unscaled value.
func (x Decimal) Unscaled() *big.Int {
	return new(big.Int).Set(x.int())
}

// Scale returns the number of digits after the decimal point in x's
// canonical form.
func (x Decimal) Scale() int {
	return x.scale
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Decimal) Sign() int {
	return x.int().Sign()
}

// IsZero reports whether x is 0.
func (x Decimal) IsZero() bool {
	return x.Sign() == 0
}

// Add returns x + y.
func (x Decimal) Add(y Decimal) Decimal {
	s := max(x.scale, y.scale)
	a, b := x.withScale(s), y.withScale(s)
	return canonical(new(big.Int).Add(a.int(), b.int()), s)
}

// Sub returns x - y.
func (x Decimal) Sub(y Decimal) Decimal {
	s := max(x.scale, y.scale)
	a, b := x.withScale(s), y.withScale(s)
	return canonical(new(big.Int).Sub(a.int(), b.int()), s)
}

// Mul returns x × y.
func (x Decimal) Mul(y Decimal) Decimal {
	return canonical(new(big.Int).Mul(x.int(), y.int()), x.scale+y.scale)
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	return canonical(new(big.Int).Neg(x.int()), x.scale)
}

// Quo returns x / y rounded to prec digits after the decimal point. A
// remainder of at least half a unit in the last place rounds the magnitude of
// the result up, whatever the signs of x and y.
func (x Decimal) Quo(y Decimal, prec int) (Decimal, error) {
	if y.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	if prec < 0 {
		return Decimal{}, ErrNegativePrecision
	}
	// x/y = (xu × 10**(ys+prec)) / (yu × 10**xs) × 10**-prec
	num := new(big.Int).Mul(x.int(), pow10(y.scale+prec))
	den := new(big.Int).Mul(y.int(), pow10(x.scale))
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	r2 := abs(r)
	if r2.Lsh(r2, 1).CmpAbs(den) >= 0 && r.Sign() != 0 {
		// q is truncated, so it may be 0 even when the quotient is negative;
		// the direction comes from the operands.
		if num.Sign() == den.Sign() {
			q.Add(q, one)
		} else {
			q.Sub(q, one)
		}
	}
	return canonical(q, prec), nil
}

// Cmp compares x and y and returns -1, 0, or +1 if x < y, x == y, or x > y,
// respectively.
func (x Decimal) Cmp(y Decimal) int {
	s := max(x.scale, y.scale)
	return x.withScale(s).int().Cmp(y.withScale(s).int())
}

// Equal reports whether x and y denote the same number.
func (x Decimal) Equal(y Decimal) bool {
	return x.scale == y.scale && x.int().Cmp(y.int()) == 0
}

// String formats x as exact decimal text without exponent or digit grouping,
// e.g. "-12.05". Trailing fractional zeros are never written.
func (x Decimal) String() string {
	u := x.int()
	if x.scale == 0 {
		return u.String()
	}
	digits := abs(u).String()
	if pad := x.scale + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	split := len(digits) - x.scale
	ip, fp := digits[:split], strings.TrimRight(digits[split:], "0")
	var b strings.Builder
	b.Grow(len(digits) + 2)
	if u.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(ip)
	if fp != "" {
		b.WriteByte('.')
		b.WriteString(fp)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Decimal) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Decimal) UnmarshalText(text []byte) error {
	d, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = d
	return nil
}
