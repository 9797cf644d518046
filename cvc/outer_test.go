package cvc

import (
	"testing"

	"github.com/tos-network/btok/internal/cvctest"
)

func TestWrapUnwrapRoundTripAllSizes(t *testing.T) {
	for _, size := range []cvctest.KeySize{cvctest.Size256, cvctest.Size384, cvctest.Size512} {
		fx := cvctest.New(42, size)
		c := &CVC{
			Authority: fx.Authority,
			Holder:    fx.Holder,
			From:      fx.From,
			Until:     fx.Until,
		}
		cert, err := Wrap(c, fx.Priv)
		if err != nil {
			t.Fatalf("%d: Wrap: %v", size, err)
		}
		if c.PubkeyLen != int(size)*2 {
			t.Fatalf("%d: derived pubkey_len = %d, want %d", size, c.PubkeyLen, int(size)*2)
		}
		if c.SigLen != int(size)+int(size)/2 {
			t.Fatalf("%d: sig_len = %d, want %d", size, c.SigLen, int(size)+int(size)/2)
		}

		got, err := Unwrap(cert, c.Pubkey)
		if err != nil {
			t.Fatalf("%d: Unwrap with pubkey: %v", size, err)
		}
		if got.Authority != c.Authority || got.Holder != c.Holder {
			t.Fatalf("%d: unwrap mismatch", size)
		}

		// unwrap without a verification key exercises the trial
		// sig-length inference path instead.
		got2, err := Unwrap(cert, nil)
		if err != nil {
			t.Fatalf("%d: Unwrap without pubkey: %v", size, err)
		}
		if got2.SigLen != c.SigLen {
			t.Fatalf("%d: trial-inferred sig_len = %d, want %d", size, got2.SigLen, c.SigLen)
		}
	}
}

func TestUnwrapRejectsTamperedBody(t *testing.T) {
	fx := cvctest.New(7, cvctest.Size256)
	c := &CVC{Authority: fx.Authority, Holder: fx.Holder, From: fx.From, Until: fx.Until}
	cert, err := Wrap(c, fx.Priv)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	tampered := append([]byte{}, cert...)
	// flip a byte in the middle of the body, landing inside the
	// holder/pubkey content rather than a tag or length octet.
	mid := len(tampered) / 2
	tampered[mid] ^= 0xFF
	if _, err := Unwrap(tampered, c.Pubkey); err == nil {
		t.Fatalf("expected Unwrap to reject a tampered certificate")
	}
}

func TestUnwrapRejectsWrongPubkey(t *testing.T) {
	fx1 := cvctest.New(1, cvctest.Size256)
	fx2 := cvctest.New(2, cvctest.Size256)
	c := &CVC{Authority: fx1.Authority, Holder: fx1.Holder, From: fx1.From, Until: fx1.Until}
	cert, err := Wrap(c, fx1.Priv)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	wrongPub, err := calcPubkey(fx2.Priv)
	if err != nil {
		t.Fatalf("calcPubkey: %v", err)
	}
	if _, err := Unwrap(cert, wrongPub); err == nil {
		t.Fatalf("expected Unwrap to reject signature under a different key")
	}
}

func TestWrapRejectsUnsupportedKeyLength(t *testing.T) {
	fx := cvctest.New(1, cvctest.Size256)
	c := &CVC{Authority: fx.Authority, Holder: fx.Holder, From: fx.From, Until: fx.Until}
	if _, err := Wrap(c, make([]byte, 17)); err == nil {
		t.Fatalf("expected error for unsupported private key length")
	}
}

func FuzzUnwrapNeverPanics(f *testing.F) {
	fx := cvctest.New(3, cvctest.Size256)
	c := &CVC{Authority: fx.Authority, Holder: fx.Holder, From: fx.From, Until: fx.Until}
	seed, err := Wrap(c, fx.Priv)
	if err != nil {
		f.Fatalf("Wrap: %v", err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x7F, 0x21})

	f.Fuzz(func(t *testing.T, data []byte) {
		// Unwrap must only ever return an error on malformed/mutated
		// input, never panic.
		_, _ = Unwrap(data, nil)
	})
}
