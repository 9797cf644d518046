package cvc

import "github.com/tos-network/btok/cvc/der"

var tagOuter = der.Tag(33, true) // 0x7F21
var tagSig = der.Tag(55, false)  // 0x5F37

var trialSigLens = []int{48, 72, 96}

// Wrap implements the CVCertificate encode algorithm: it
// derives the public key when absent, validates the record, signs the
// encoded body with priv, and returns the outer SEQ bytes.
func Wrap(c *CVC, priv []byte) ([]byte, error) {
	switch len(priv) {
	case 32, 48, 64:
	default:
		return nil, newErr(KindBadInput, "unsupported private key length")
	}

	if c.PubkeyLen == 0 {
		pub, err := calcPubkey(priv)
		if err != nil {
			return nil, err
		}
		c.Pubkey = pub
		c.PubkeyLen = len(priv) * 2
	}

	if err := Check(c); err != nil {
		return nil, err
	}

	body, err := EncodeBody(c)
	if err != nil {
		return nil, err
	}

	sig, err := sign(body, priv)
	if err != nil {
		return nil, err
	}
	c.Sig = sig
	c.SigLen = len(priv) + len(priv)/2

	content := append(append([]byte{}, body...), der.WriteOctetString(tagSig, sig)...)
	return der.WriteElement(tagOuter, content), nil
}

// Unwrap implements the CVCertificate decode algorithm.
// pub may be nil to skip signature verification ("self-trusted
// input", used by Issuer when unwrapping the parent certificate).
func Unwrap(certBytes []byte, pub []byte) (*CVC, error) {
	switch len(pub) {
	case 0, 64, 96, 128:
	default:
		return nil, newErr(KindBadInput, "unsupported public key length")
	}

	outer := der.NewCursor(certBytes)
	inner, err := outer.ReadConstructedHeader(tagOuter)
	if err != nil {
		return nil, wrapErr(KindBadFormat, "outer tag", err)
	}

	bodyBuf := inner.Remaining()
	cvc, bodyLen, err := DecodeBody(bodyBuf)
	if err != nil {
		return nil, err
	}
	body := bodyBuf[:bodyLen]
	sigBuf := bodyBuf[bodyLen:]

	var sig []byte
	if len(pub) > 0 {
		sigLen := len(pub) - len(pub)/4
		sigCursor := der.NewCursor(sigBuf)
		sig, err = sigCursor.ReadOctetString(tagSig, sigLen)
		if err != nil {
			return nil, wrapErr(KindBadFormat, "signature", err)
		}
		if !sigCursor.Done() {
			return nil, newErr(KindBadFormat, "signature: trailing data")
		}
	} else {
		for _, n := range trialSigLens {
			c := der.NewCursor(sigBuf)
			if s, err := c.ReadOctetString(tagSig, n); err == nil && c.Done() {
				sig = s
				break
			}
		}
		if sig == nil {
			return nil, newErr(KindBadFormat, "unrecognized signature length")
		}
	}
	cvc.Sig = sig
	cvc.SigLen = len(sig)

	if len(pub) > 0 {
		if err := verify(body, sig, pub); err != nil {
			return nil, err
		}
	}

	if err := Check(cvc); err != nil {
		return nil, err
	}
	return cvc, nil
}
