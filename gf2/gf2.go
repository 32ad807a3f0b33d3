// Package gf2 implements polynomial arithmetic over GF(2), enough to decide
// whether a hybrid rule 90/150 automaton produces a maximal-length sequence.
//
// A register of n cells with null boundaries is maximal (it visits all
// 2^n - 1 nonzero states) exactly when the characteristic polynomial of its
// transition matrix is primitive.
package gf2

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/ezrec/lcar/bitvec"
	"github.com/ezrec/lcar/translate"
)

var f = translate.From

var (
	ErrNoFactors = errors.New(f("no factorization of 2^n-1 for degree"))
	ErrZeroPoly  = errors.New(f("zero polynomial"))
)

// Poly is a polynomial over GF(2). Bit i of the coefficient set is the
// coefficient of x^i. The zero value is the zero polynomial.
type Poly struct {
	c *big.Int
}

var _bigOne = big.NewInt(1)

func (p Poly) coef() *big.Int {
	if p.c == nil {
		return new(big.Int)
	}
	return p.c
}

// New returns the polynomial with a unit coefficient at each exponent.
// Repeated exponents cancel.
func New(exponents ...int) Poly {
	c := new(big.Int)
	for _, e := range exponents {
		c.SetBit(c, e, c.Bit(e)^1)
	}
	return Poly{c: c}
}

// One returns the constant polynomial 1.
func One() Poly {
	return New(0)
}

// X returns the polynomial x.
func X() Poly {
	return New(1)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return p.coef().BitLen() - 1
}

// Coeff returns the coefficient of x^i.
func (p Poly) Coeff(i int) bool {
	return p.coef().Bit(i) != 0
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.coef().Sign() == 0
}

// IsOne reports whether p is the constant 1.
func (p Poly) IsOne() bool {
	return p.coef().Cmp(_bigOne) == 0
}

// Equal compares two polynomials.
func (p Poly) Equal(q Poly) bool {
	return p.coef().Cmp(q.coef()) == 0
}

// Add returns p + q (which is also p - q).
func (p Poly) Add(q Poly) Poly {
	return Poly{c: new(big.Int).Xor(p.coef(), q.coef())}
}

// Shift returns p * x^n.
func (p Poly) Shift(n uint) Poly {
	return Poly{c: new(big.Int).Lsh(p.coef(), n)}
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	a := p.coef()
	b := q.coef()
	r := new(big.Int)
	t := new(big.Int)
	for i := range b.BitLen() {
		if b.Bit(i) != 0 {
			r.Xor(r, t.Lsh(a, uint(i)))
		}
	}
	return Poly{c: r}
}

// Mod returns p modulo m.
func (p Poly) Mod(m Poly) (r Poly, err error) {
	dm := m.Degree()
	if dm < 0 {
		err = ErrZeroPoly
		return
	}
	c := new(big.Int).Set(p.coef())
	t := new(big.Int)
	for d := c.BitLen() - 1; d >= dm; d-- {
		if c.Bit(d) != 0 {
			c.Xor(c, t.Lsh(m.coef(), uint(d-dm)))
		}
	}
	r = Poly{c: c}
	return
}

// MulMod returns p * q modulo m.
func (p Poly) MulMod(q, m Poly) (Poly, error) {
	return p.Mul(q).Mod(m)
}

// PowMod returns p^e modulo m, by square and multiply.
func (p Poly) PowMod(e *big.Int, m Poly) (r Poly, err error) {
	base, err := p.Mod(m)
	if err != nil {
		return
	}
	r, err = One().Mod(m)
	if err != nil {
		return
	}
	for i := e.BitLen() - 1; i >= 0; i-- {
		r, err = r.MulMod(r, m)
		if err != nil {
			return
		}
		if e.Bit(i) != 0 {
			r, err = r.MulMod(base, m)
			if err != nil {
				return
			}
		}
	}
	return
}

// String renders p as, for example, "x^3 + x + 1".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		if !p.Coeff(i) {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}

// CharPoly returns the characteristic polynomial of the null-boundary
// automaton selected by ruleMap, where a set bit selects rule 150 for that
// cell. It follows the continuant recurrence
//
//	D(k) = (x + d(k)) D(k-1) + D(k-2),  D(0) = 1, D(-1) = 0
//
// of the tridiagonal transition matrix.
func CharPoly(ruleMap bitvec.Vector) Poly {
	prev := Poly{}
	cur := One()
	for i := range ruleMap.Len() {
		next := cur.Shift(1).Add(prev)
		if ruleMap.Bit(i) {
			next = next.Add(cur)
		}
		prev, cur = cur, next
	}
	return cur
}

// MersenneFactors returns the distinct prime factors of 2^n - 1.
func MersenneFactors(n int) (factors []*big.Int, err error) {
	table, ok := _mersenneFactors[n]
	if !ok {
		err = ErrDegree(n)
		return
	}
	for _, text := range table {
		q, ok := new(big.Int).SetString(text, 10)
		if !ok {
			panic(f("gf2: bad factor %q for degree %d", text, n))
		}
		factors = append(factors, q)
	}
	return
}

// ErrDegree reports a degree outside the factor table.
type ErrDegree int

func (err ErrDegree) Error() string {
	return f("no factorization of 2^%d-1", int(err))
}

func (err ErrDegree) Is(target error) bool {
	return target == ErrNoFactors
}

// Primitive reports whether p is a primitive polynomial: x has
// multiplicative order exactly 2^n - 1 modulo p, where n is the degree.
func Primitive(p Poly) (ok bool, err error) {
	n := p.Degree()
	switch {
	case n < 1:
		return
	case n == 1:
		ok = p.Equal(New(1, 0))
		return
	}

	factors, err := MersenneFactors(n)
	if err != nil {
		return
	}

	order := new(big.Int).Lsh(_bigOne, uint(n))
	order.Sub(order, _bigOne)

	r, err := X().PowMod(order, p)
	if err != nil || !r.IsOne() {
		return
	}

	for _, q := range factors {
		e := new(big.Int).Quo(order, q)
		r, err = X().PowMod(e, p)
		if err != nil || r.IsOne() {
			return
		}
	}

	ok = true
	return
}
