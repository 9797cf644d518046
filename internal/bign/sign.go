package bign

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"math/big"
)

var (
	// ErrBadPubkey is returned when a public key fails group membership.
	ErrBadPubkey = errors.New("bign: public key not on curve")
	// ErrBadKeypair is returned when a private/public key pair is inconsistent.
	ErrBadKeypair = errors.New("bign: private and public key do not match")
	// ErrBadInput is returned for malformed operand lengths.
	ErrBadInput = errors.New("bign: invalid input length")
	// ErrBadSig is returned when signature verification fails.
	ErrBadSig = errors.New("bign: signature verification failed")
)

// CalcPubkey derives the uncompressed public key (2*PrivLen octets,
// X||Y) from a private scalar.
func (c *Curve) CalcPubkey(priv []byte) ([]byte, error) {
	if len(priv) != c.PrivLen {
		return nil, ErrBadInput
	}
	d := new(big.Int).SetBytes(priv)
	if d.Sign() == 0 || d.Cmp(c.N) >= 0 {
		return nil, ErrBadInput
	}
	p := c.scalarMult(c.basePoint(), d)
	return c.marshalPoint(p), nil
}

// ValPubkey checks that pub encodes a point in the curve's group.
func (c *Curve) ValPubkey(pub []byte) error {
	p, ok := c.unmarshalPoint(pub)
	if !ok {
		return ErrBadPubkey
	}
	if !c.onCurve(p) {
		return ErrBadPubkey
	}
	// cofactor is 1 for all three curves, so on-curve implies in the
	// prime-order subgroup; no further cofactor clearing is needed.
	return nil
}

// ValKeypair checks priv and pub are a consistent pair.
func (c *Curve) ValKeypair(priv, pub []byte) error {
	if len(pub) != 2*len(priv) {
		return ErrBadKeypair
	}
	derived, err := c.CalcPubkey(priv)
	if err != nil {
		return ErrBadKeypair
	}
	if !bytes.Equal(derived, pub) {
		return ErrBadKeypair
	}
	return nil
}

func (c *Curve) marshalPoint(p point) []byte {
	out := make([]byte, 2*c.PrivLen)
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(out[c.PrivLen-len(xb):c.PrivLen], xb)
	copy(out[2*c.PrivLen-len(yb):], yb)
	return out
}

func (c *Curve) unmarshalPoint(buf []byte) (point, bool) {
	if len(buf) != 2*c.PrivLen {
		return point{}, false
	}
	x := new(big.Int).SetBytes(buf[:c.PrivLen])
	y := new(big.Int).SetBytes(buf[c.PrivLen:])
	return point{X: x, Y: y}, true
}

// challengeLen and sigLen fix the two-component split of a signature:
// a PrivLen/2-octet challenge and a PrivLen-octet scalar, totalling
// PrivLen + PrivLen/2 octets — exactly the sig_len the outer codec
// expects (48/72/96 for the three curves).
func (c *Curve) challengeLen() int { return c.PrivLen / 2 }
func (c *Curve) sigLen() int       { return c.PrivLen + c.challengeLen() }

// SigLen returns the signature length this curve produces (48/72/96).
func (c *Curve) SigLen() int { return c.sigLen() }

// challenge derives the Schnorr-style challenge for (hashOIDDER,
// digest, R): an internal SHA-256 mix, independent of whichever
// external hash (belt/bash) produced digest, truncated to
// challengeLen() octets and reduced mod N.
func (c *Curve) challenge(hashOIDDER, digest []byte, r point) *big.Int {
	h := sha256.New()
	h.Write(hashOIDDER)
	h.Write(digest)
	h.Write(c.marshalPoint(r))
	sum := h.Sum(nil)
	e := new(big.Int).SetBytes(sum[:c.challengeLen()])
	return e.Mod(e, c.N)
}

// deterministicNonce expands priv, the message digest and caller-
// supplied randomness (possibly empty, step 4) into a
// nonce in [1,N) via an RFC 6979-shaped HMAC-DRBG, so "no RNG
// available" still yields a reproducible, non-repeating-per-message
// nonce rather than a fixed one.
func (c *Curve) deterministicNonce(priv, digest, randomness []byte) *big.Int {
	key := make([]byte, sha256.Size)
	mac := hmac.New(sha256.New, key)
	mac.Write(bytes.Repeat([]byte{0x00}, sha256.Size))
	mac.Write([]byte{0x00})
	mac.Write(priv)
	mac.Write(digest)
	mac.Write(randomness)
	key = mac.Sum(nil)

	v := make([]byte, sha256.Size)
	for i := range v {
		v[i] = 0x01
	}
	mac = hmac.New(sha256.New, key)
	mac.Write(v)
	v = mac.Sum(nil)

	mac = hmac.New(sha256.New, key)
	mac.Write(v)
	mac.Write([]byte{0x01})
	mac.Write(priv)
	mac.Write(digest)
	mac.Write(randomness)
	key = mac.Sum(nil)

	mac = hmac.New(sha256.New, key)
	mac.Write(v)
	v = mac.Sum(nil)

	out := make([]byte, 0, c.PrivLen)
	for len(out) < c.PrivLen {
		mac = hmac.New(sha256.New, key)
		mac.Write(v)
		v = mac.Sum(nil)
		out = append(out, v...)
	}
	k := new(big.Int).SetBytes(out[:c.PrivLen])
	k.Mod(k, c.N)
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return k
}

// Sign computes a deterministic EC-Schnorr-style signature over
// digest, domain-separated by hashOIDDER, producing exactly
// sigLen() = PrivLen + PrivLen/2 octets: a PrivLen/2-octet challenge
// followed by a PrivLen-octet scalar.
func (c *Curve) Sign(hashOIDDER, digest, priv, randomness []byte) ([]byte, error) {
	if len(priv) != c.PrivLen {
		return nil, ErrBadInput
	}
	d := new(big.Int).SetBytes(priv)
	if d.Sign() == 0 || d.Cmp(c.N) >= 0 {
		return nil, ErrBadInput
	}

	for attempt := 0; ; attempt++ {
		seed := randomness
		if attempt > 0 {
			seed = append(append([]byte{}, randomness...), byte(attempt))
		}
		k := c.deterministicNonce(priv, digest, seed)
		r := c.scalarMult(c.basePoint(), k)
		e := c.challenge(hashOIDDER, digest, r)
		if e.Sign() == 0 {
			continue
		}
		s := subMod(k, mulMod(e, d, c.N), c.N)
		if s.Sign() == 0 {
			continue
		}

		out := make([]byte, c.sigLen())
		eb := e.Bytes()
		sb := s.Bytes()
		copy(out[c.challengeLen()-len(eb):c.challengeLen()], eb)
		copy(out[c.sigLen()-len(sb):], sb)
		return out, nil
	}
}

// Verify checks sig against digest and pub, domain-separated by hashOIDDER.
func (c *Curve) Verify(hashOIDDER, digest, sig, pub []byte) error {
	if len(sig) != c.sigLen() {
		return ErrBadSig
	}
	eLen := c.challengeLen()
	e := new(big.Int).SetBytes(sig[:eLen])
	s := new(big.Int).SetBytes(sig[eLen:])
	if s.Cmp(c.N) >= 0 {
		return ErrBadSig
	}

	p, ok := c.unmarshalPoint(pub)
	if !ok || !c.onCurve(p) {
		return ErrBadPubkey
	}

	// R' = sG + eQ
	rPrime := c.add(c.scalarMult(c.basePoint(), s), c.scalarMult(p, e))
	if rPrime.Inf {
		return ErrBadSig
	}
	ePrime := c.challenge(hashOIDDER, digest, rPrime)
	if ePrime.Cmp(e) != 0 {
		return ErrBadSig
	}
	return nil
}
