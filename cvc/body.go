package cvc

import "github.com/tos-network/btok/cvc/der"

// Tag table for CertificateBody. Numbers and the constructed bit are
// fixed by the schema; der.Tag derives the exact identifier octets
// (single-octet for numbers <31, high-tag-number form otherwise),
// which is how these match the schema's literal 0x7F4E/0x5F29/...
// bytes one-for-one.
var (
	tagBody      = der.Tag(78, true)  // 0x7F4E
	tagVersion   = der.Tag(41, false) // 0x5F29
	tagAuthority = der.Tag(2, false)  // 0x42
	tagPubkeySeq = der.Tag(73, true)  // 0x7F49
	tagHolder    = der.Tag(32, false) // 0x5F20
	tagEIDSeq    = der.Tag(76, true)  // 0x7F4C
	tagFrom      = der.Tag(37, false) // 0x5F25
	tagUntil     = der.Tag(36, false) // 0x5F24
	tagCVExtSeq  = der.Tag(5, true)   // 0x65
	tagESignSeq  = der.Tag(19, true)  // 0x73
)

func allZero5(b [5]byte) bool { return b == [5]byte{} }
func allZero2(b [2]byte) bool { return b == [2]byte{} }

// EncodeBody serializes the CertificateBody. The caller
// must already have passed Validators; fields are emitted in schema
// order and each optional block is emitted iff its HAT pointer is
// non-nil and the HAT is not all-zero.
func EncodeBody(c *CVC) ([]byte, error) {
	var content []byte

	content = append(content, der.WriteSize(tagVersion, 0)...)
	content = append(content, der.WritePrintableString(tagAuthority, []byte(c.Authority))...)

	pubkeyBody := append(append([]byte{}, oidBignPubkey...), der.WriteBitString(c.Pubkey)...)
	content = append(content, der.WriteElement(tagPubkeySeq, pubkeyBody)...)

	content = append(content, der.WritePrintableString(tagHolder, []byte(c.Holder))...)

	if c.HATEid != nil && !allZero5(*c.HATEid) {
		eidBody := append(append([]byte{}, oidEIDAccess...), der.WriteOctetString(der.TagOctetString, c.HATEid[:])...)
		content = append(content, der.WriteElement(tagEIDSeq, eidBody)...)
	}

	content = append(content, der.WriteOctetString(tagFrom, c.From[:])...)
	content = append(content, der.WriteOctetString(tagUntil, c.Until[:])...)

	if c.HATESign != nil && !allZero2(*c.HATESign) {
		esignInner := append(append([]byte{}, oidESignAccess...), der.WriteOctetString(der.TagOctetString, c.HATESign[:])...)
		esignBody := der.WriteElement(tagESignSeq, esignInner)
		content = append(content, der.WriteElement(tagCVExtSeq, esignBody)...)
	}

	return der.WriteElement(tagBody, content), nil
}

// EncodedBodyLen returns the exact length EncodeBody would produce,
// without requiring a destination buffer from the caller.
func EncodedBodyLen(c *CVC) (int, error) {
	b, err := EncodeBody(c)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// DecodeBody parses a CertificateBody from the start of buf, returning
// the populated CVC and the number of bytes consumed.
func DecodeBody(buf []byte) (*CVC, int, error) {
	outer := der.NewCursor(buf)
	inner, err := outer.ReadConstructedHeader(tagBody)
	if err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: outer tag", err)
	}
	consumed := outer.Consumed()

	cvc := &CVC{}

	if err := inner.ReadSize(tagVersion, 0); err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: version", err)
	}

	authority, err := inner.ReadPrintableString(tagAuthority, 8, 12)
	if err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: authority", err)
	}
	cvc.Authority = string(authority)

	pubkeySeq, err := inner.ReadConstructedHeader(tagPubkeySeq)
	if err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: pubkey seq", err)
	}
	if err := pubkeySeq.ReadOID(oidBignPubkey); err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: pubkey oid", err)
	}
	pubkey, err := pubkeySeq.ReadBitString()
	if err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: pubkey bits", err)
	}
	switch len(pubkey) * 8 {
	case 512, 768, 1024:
	default:
		return nil, 0, newErr(KindBadFormat, "body: pubkey bit length")
	}
	if !pubkeySeq.Done() {
		return nil, 0, newErr(KindBadFormat, "body: pubkey seq trailing data")
	}
	cvc.Pubkey = pubkey
	cvc.PubkeyLen = len(pubkey)

	holder, err := inner.ReadPrintableString(tagHolder, 8, 12)
	if err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: holder", err)
	}
	cvc.Holder = string(holder)

	if inner.PeekTag(tagEIDSeq) {
		eidSeq, err := inner.ReadConstructedHeader(tagEIDSeq)
		if err != nil {
			return nil, 0, wrapErr(KindBadFormat, "body: eid seq", err)
		}
		if err := eidSeq.ReadOID(oidEIDAccess); err != nil {
			return nil, 0, wrapErr(KindBadFormat, "body: eid oid", err)
		}
		hat, err := eidSeq.ReadOctetString(der.TagOctetString, 5)
		if err != nil {
			return nil, 0, wrapErr(KindBadFormat, "body: eid hat", err)
		}
		if !eidSeq.Done() {
			return nil, 0, newErr(KindBadFormat, "body: eid seq trailing data")
		}
		var hatArr [5]byte
		copy(hatArr[:], hat)
		cvc.HATEid = &hatArr
	}

	from, err := inner.ReadOctetString(tagFrom, 6)
	if err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: from", err)
	}
	copy(cvc.From[:], from)

	until, err := inner.ReadOctetString(tagUntil, 6)
	if err != nil {
		return nil, 0, wrapErr(KindBadFormat, "body: until", err)
	}
	copy(cvc.Until[:], until)

	if inner.PeekTag(tagCVExtSeq) {
		cvExt, err := inner.ReadConstructedHeader(tagCVExtSeq)
		if err != nil {
			return nil, 0, wrapErr(KindBadFormat, "body: cvext seq", err)
		}
		esignSeq, err := cvExt.ReadConstructedHeader(tagESignSeq)
		if err != nil {
			return nil, 0, wrapErr(KindBadFormat, "body: esign seq", err)
		}
		if err := esignSeq.ReadOID(oidESignAccess); err != nil {
			return nil, 0, wrapErr(KindBadFormat, "body: esign oid", err)
		}
		hat, err := esignSeq.ReadOctetString(der.TagOctetString, 2)
		if err != nil {
			return nil, 0, wrapErr(KindBadFormat, "body: esign hat", err)
		}
		if !esignSeq.Done() {
			return nil, 0, newErr(KindBadFormat, "body: esign seq trailing data")
		}
		if !cvExt.Done() {
			return nil, 0, newErr(KindBadFormat, "body: cvext seq trailing data")
		}
		var hatArr [2]byte
		copy(hatArr[:], hat)
		cvc.HATESign = &hatArr
	}

	if !inner.Done() {
		return nil, 0, newErr(KindBadFormat, "body: trailing data")
	}

	return cvc, consumed, nil
}
