package cvc

import (
	"github.com/tos-network/btok/internal/bashhash"
	"github.com/tos-network/btok/internal/belt"
	"github.com/tos-network/btok/internal/bign"
	"github.com/tos-network/btok/internal/rng"
)

// adapter binds one of the three curve/hash/OID triples, keyed by
// private- or public-key octet length.
type adapter struct {
	curve    *bign.Curve
	curveOID []byte
	hashOID  []byte
	hash     func([]byte) []byte
}

var adapters = []*adapter{
	{curveOID: oidCurveBign256, hashOID: oidHashBelt256, hash: hashBelt256},
	{curveOID: oidCurveBign384, hashOID: oidHashBash192, hash: hashBash192},
	{curveOID: oidCurveBign512, hashOID: oidHashBash256, hash: hashBash256},
}

func init() {
	adapters[0].curve, _ = bign.ByPrivLen(32)
	adapters[1].curve, _ = bign.ByPrivLen(48)
	adapters[2].curve, _ = bign.ByPrivLen(64)
}

func hashBelt256(msg []byte) []byte {
	sum := belt.Sum(msg)
	return sum[:]
}

func hashBash192(msg []byte) []byte {
	sum, err := bashhash.Sum(bashhash.Level192, msg)
	if err != nil {
		panic(err) // Level192 is always supported; a failure here is a programming error
	}
	return sum
}

func hashBash256(msg []byte) []byte {
	sum, err := bashhash.Sum(bashhash.Level256, msg)
	if err != nil {
		panic(err)
	}
	return sum
}

func adapterByPrivLen(n int) (*adapter, error) {
	for _, a := range adapters {
		if a.curve.PrivLen == n {
			return a, nil
		}
	}
	return nil, newErr(KindBadInput, "unsupported private key length")
}

func adapterByPubLen(n int) (*adapter, error) {
	for _, a := range adapters {
		if a.curve.PubLen == n {
			return a, nil
		}
	}
	return nil, newErr(KindBadInput, "unsupported public key length")
}

func curveByPubLen(n int) (*bign.Curve, error) {
	a, err := adapterByPubLen(n)
	if err != nil {
		return nil, err
	}
	return a.curve, nil
}

// rngSource is the process-wide RNG handle the adapter consults
// opportunistically; production code runs with rng.System{}, tests
// may substitute rng.Unavailable{}.
var rngSource rng.Source = rng.System{}

// sign hashes body, DER-encodes the selected hash OID, draws priv_len
// random octets when the RNG is initialized, and delegates to the
// underlying curve's deterministic signature scheme.
func sign(body, priv []byte) ([]byte, error) {
	a, err := adapterByPrivLen(len(priv))
	if err != nil {
		return nil, err
	}
	digest := a.hash(body)

	var randomness []byte
	if rngSource.IsInitialized() {
		randomness = make([]byte, len(priv))
		if err := rngSource.Fill(randomness); err != nil {
			return nil, wrapErr(KindBadInput, "rng", err)
		}
	}

	sig, err := a.curve.Sign(a.hashOID, digest, priv, randomness)
	if err != nil {
		return nil, wrapErr(KindBadInput, "sign", err)
	}
	return sig, nil
}

// verify mirrors sign: load the curve/hash by pub's length, re-check
// group membership, and delegate to the curve's verifier. Any failure
// surfaces as KindBadSig.
func verify(body, sig, pub []byte) error {
	a, err := adapterByPubLen(len(pub))
	if err != nil {
		return newErr(KindBadSig, "unsupported public key length")
	}
	if err := a.curve.ValPubkey(pub); err != nil {
		return wrapErr(KindBadSig, "pubkey", err)
	}
	digest := a.hash(body)
	if err := a.curve.Verify(a.hashOID, digest, sig, pub); err != nil {
		return wrapErr(KindBadSig, "verify", err)
	}
	return nil
}

// calcPubkey derives the uncompressed public key from priv.
func calcPubkey(priv []byte) ([]byte, error) {
	a, err := adapterByPrivLen(len(priv))
	if err != nil {
		return nil, newErr(KindBadInput, "unsupported private key length")
	}
	pub, err := a.curve.CalcPubkey(priv)
	if err != nil {
		return nil, wrapErr(KindBadInput, "calc_pubkey", err)
	}
	return pub, nil
}

// valKeypair checks priv and pub are a consistent pair.
func valKeypair(priv, pub []byte) error {
	a, err := adapterByPrivLen(len(priv))
	if err != nil {
		return newErr(KindBadKeypair, "unsupported private key length")
	}
	if err := a.curve.ValKeypair(priv, pub); err != nil {
		return wrapErr(KindBadKeypair, "keypair", err)
	}
	return nil
}
