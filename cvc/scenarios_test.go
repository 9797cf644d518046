package cvc

import "testing"

// TestS1MinimalValidDates: scenario S1 -- minimal valid
// dates, priv_len 32, all HATs absent.
func TestS1MinimalValidDates(t *testing.T) {
	priv := make([]byte, 32)
	priv[31] = 1
	c := &CVC{
		Authority: "AUTHORITY1",
		Holder:    "HOLDER0001",
		From:      [6]byte{1, 9, 0, 1, 0, 1}, // 19-01-01
		Until:     [6]byte{1, 9, 0, 1, 0, 1},
	}
	cert, err := Wrap(c, priv)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	got, err := Unwrap(cert, c.Pubkey)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if got.From != c.From || got.Until != c.Until {
		t.Fatalf("date round-trip mismatch: got from=%v until=%v", got.From, got.Until)
	}
}

// TestS2LeapDay: scenario S2 -- Feb 29 valid in leap years
// 2020/2024, rejected in non-leap year 2021.
func TestS2LeapDay(t *testing.T) {
	from := [6]byte{2, 0, 0, 2, 2, 9} // 2020-02-29
	until := [6]byte{2, 4, 0, 2, 2, 9} // 2024-02-29
	if !CheckDate(from) || !CheckDate(until) {
		t.Fatalf("expected both leap-year Feb 29 dates to be valid")
	}
	nonLeap := [6]byte{2, 1, 0, 2, 2, 9} // 2021-02-29
	if CheckDate(nonLeap) {
		t.Fatalf("expected Feb 29 in a non-leap year to be rejected")
	}
}

// TestS3DateOrdering: scenario S3 -- from > until is
// rejected by check, and no body is encoded for it.
func TestS3DateOrdering(t *testing.T) {
	priv := make([]byte, 32)
	priv[31] = 1
	c := &CVC{
		Authority: "AUTHORITY1",
		Holder:    "HOLDER0001",
		From:      [6]byte{3, 0, 0, 6, 1, 5}, // 30-06-15
		Until:     [6]byte{2, 9, 1, 2, 3, 1}, // 29-12-31
	}
	if _, err := Wrap(c, priv); err == nil {
		t.Fatalf("expected Wrap to reject from > until")
	}
}

// TestS4BothHATsPresent: scenario S4 -- both HATs present
// round-trip; an all-zero eSign HAT omits the CVExt block and shrinks
// the encoding by that block's fixed length.
func TestS4BothHATsPresent(t *testing.T) {
	priv := make([]byte, 32)
	priv[31] = 1
	pub, err := calcPubkey(priv)
	if err != nil {
		t.Fatalf("calcPubkey: %v", err)
	}
	base := &CVC{
		Authority: "AUTHORITY1",
		Holder:    "HOLDER0001",
		Pubkey:    pub,
		PubkeyLen: len(pub),
		HATEid:    &[5]byte{0x01, 0x02, 0x03, 0x04, 0x05},
		HATESign:  &[2]byte{0xAA, 0xBB},
		From:      [6]byte{2, 0, 0, 1, 0, 1},
		Until:     [6]byte{3, 0, 0, 1, 0, 1},
	}
	withBoth, err := EncodeBody(base)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, _, err := DecodeBody(withBoth)
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	if decoded.HATEid == nil || decoded.HATESign == nil {
		t.Fatalf("expected both HATs to round-trip")
	}

	zeroed := &CVC{
		Authority: base.Authority,
		Holder:    base.Holder,
		Pubkey:    base.Pubkey,
		PubkeyLen: base.PubkeyLen,
		HATEid:    base.HATEid,
		HATESign:  &[2]byte{0x00, 0x00},
		From:      base.From,
		Until:     base.Until,
	}
	withoutESign, err := EncodeBody(zeroed)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	if len(withoutESign) >= len(withBoth) {
		t.Fatalf("expected zeroed eSign HAT to shrink the encoding")
	}
	decoded2, _, err := DecodeBody(withoutESign)
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	if decoded2.HATESign != nil {
		t.Fatalf("expected CVExt block to be omitted for an all-zero eSign HAT")
	}
}

// TestS5SignatureLengthInference: scenario S5 -- unwrap
// with pub_len == 0 infers sig_len correctly for each curve size.
func TestS5SignatureLengthInference(t *testing.T) {
	wantSigLen := map[int]int{32: 48, 48: 72, 64: 96}
	for privLen, want := range wantSigLen {
		priv := make([]byte, privLen)
		priv[privLen-1] = 1
		c := &CVC{
			Authority: "AUTHORITY1",
			Holder:    "HOLDER0001",
			From:      [6]byte{2, 0, 0, 1, 0, 1},
			Until:     [6]byte{3, 0, 0, 1, 0, 1},
		}
		cert, err := Wrap(c, priv)
		if err != nil {
			t.Fatalf("priv_len=%d: Wrap: %v", privLen, err)
		}
		got, err := Unwrap(cert, nil)
		if err != nil {
			t.Fatalf("priv_len=%d: Unwrap: %v", privLen, err)
		}
		if got.SigLen != want {
			t.Fatalf("priv_len=%d: inferred sig_len=%d, want %d", privLen, got.SigLen, want)
		}
	}
}

// TestS6CrossKeyReject: scenario S6 -- verifying with the
// wrong public key yields BadSig; the correct key succeeds.
func TestS6CrossKeyReject(t *testing.T) {
	privA := make([]byte, 32)
	privA[31] = 0xAA
	privB := make([]byte, 32)
	privB[31] = 0xBB

	c := &CVC{
		Authority: "AUTHORITY1",
		Holder:    "HOLDER0001",
		From:      [6]byte{2, 0, 0, 1, 0, 1},
		Until:     [6]byte{3, 0, 0, 1, 0, 1},
	}
	cert, err := Wrap(c, privA)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	pubB, err := calcPubkey(privB)
	if err != nil {
		t.Fatalf("calcPubkey(B): %v", err)
	}
	if _, err := Unwrap(cert, pubB); err == nil {
		t.Fatalf("expected BadSig when unwrapping with the wrong public key")
	}

	if _, err := Unwrap(cert, c.Pubkey); err != nil {
		t.Fatalf("expected Unwrap to succeed with the correct public key: %v", err)
	}
}
