package bign

import (
	"math/big"

	"github.com/holiman/uint256"
)

// point is an affine Weierstrass point; the zero value is the point at
// infinity (Inf == true).
type point struct {
	X, Y *big.Int
	Inf  bool
}

// mulMod and addMod dispatch to github.com/holiman/uint256's
// fixed-width arithmetic when the modulus fits in 256 bits (the
// bign256 case, the curve this engine's private-key length of 32
// octets exercises most) and fall back to math/big's arbitrary-
// precision path for bign384/bign512. subMod always uses math/big.

func fitsUint256(p *big.Int) bool { return p.BitLen() <= 256 }

func mulMod(a, b, p *big.Int) *big.Int {
	if fitsUint256(p) {
		var ua, ub, up, ur uint256.Int
		ua.SetFromBig(a)
		ub.SetFromBig(b)
		up.SetFromBig(p)
		ur.MulMod(&ua, &ub, &up)
		return ur.ToBig()
	}
	out := new(big.Int).Mul(a, b)
	return out.Mod(out, p)
}

func addMod(a, b, p *big.Int) *big.Int {
	if fitsUint256(p) {
		var ua, ub, up, ur uint256.Int
		ua.SetFromBig(a)
		ub.SetFromBig(b)
		up.SetFromBig(p)
		ur.AddMod(&ua, &ub, &up)
		return ur.ToBig()
	}
	out := new(big.Int).Add(a, b)
	return out.Mod(out, p)
}

func subMod(a, b, p *big.Int) *big.Int {
	out := new(big.Int).Sub(a, b)
	out.Mod(out, p)
	return out
}

func invMod(a, p *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, p)
}

// double returns p+p on the curve c.
func (c *Curve) double(p point) point {
	if p.Inf || p.Y.Sign() == 0 {
		return point{Inf: true}
	}
	// lambda = (3x^2 + a) / 2y
	num := addMod(mulMod(big.NewInt(3), mulMod(p.X, p.X, c.P), c.P), c.A, c.P)
	den := invMod(addMod(p.Y, p.Y, c.P), c.P)
	lambda := mulMod(num, den, c.P)

	x3 := subMod(mulMod(lambda, lambda, c.P), addMod(p.X, p.X, c.P), c.P)
	y3 := subMod(mulMod(lambda, subMod(p.X, x3, c.P), c.P), p.Y, c.P)
	return point{X: x3, Y: y3}
}

// add returns p+q on the curve c.
func (c *Curve) add(p, q point) point {
	if p.Inf {
		return q
	}
	if q.Inf {
		return p
	}
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) == 0 {
			return c.double(p)
		}
		return point{Inf: true}
	}
	num := subMod(q.Y, p.Y, c.P)
	den := invMod(subMod(q.X, p.X, c.P), c.P)
	lambda := mulMod(num, den, c.P)

	x3 := subMod(subMod(mulMod(lambda, lambda, c.P), p.X, c.P), q.X, c.P)
	y3 := subMod(mulMod(lambda, subMod(p.X, x3, c.P), c.P), p.Y, c.P)
	return point{X: x3, Y: y3}
}

// scalarMult returns k*p via double-and-add, k reduced mod N implicitly
// by the caller (callers here always pass a scalar already in [0,N)).
func (c *Curve) scalarMult(p point, k *big.Int) point {
	result := point{Inf: true}
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = c.add(result, addend)
		}
		addend = c.double(addend)
	}
	return result
}

// basePoint returns the curve's generator as a point.
func (c *Curve) basePoint() point {
	return point{X: new(big.Int).Set(c.Gx), Y: new(big.Int).Set(c.Gy)}
}

// onCurve reports whether p satisfies the Weierstrass equation.
func (c *Curve) onCurve(p point) bool {
	if p.Inf {
		return false
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}
	lhs := mulMod(p.Y, p.Y, c.P)
	rhs := addMod(addMod(mulMod(mulMod(p.X, p.X, c.P), p.X, c.P), mulMod(c.A, p.X, c.P), c.P), c.B, c.P)
	return lhs.Cmp(rhs) == 0
}
