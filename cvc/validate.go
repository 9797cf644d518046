package cvc

// CheckName reports whether s is printable (the restricted ASN.1
// PrintableString alphabet) and 8..12 octets long.
func CheckName(s []byte) bool {
	if len(s) < 8 || len(s) > 12 {
		return false
	}
	for _, b := range s {
		if !isPrintable(b) {
			return false
		}
	}
	return true
}

// CheckNameString is the string convenience form of CheckName.
func CheckNameString(s string) bool { return CheckName([]byte(s)) }

func isPrintable(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// CheckDate validates a 6-digit BCD YYMMDD date: each digit in 0..9,
// year >= 19 (2019 is the earliest admissible year), month 1..12, day
// 1..31 with the standard short-month and February rules, leap years
// taken as year%4==0 (the century rule is deliberately not applied,
// since the target range never crosses a century boundary).
func CheckDate(d [6]byte) bool {
	for _, b := range d {
		if b > 9 {
			return false
		}
	}
	year := int(d[0])*10 + int(d[1])
	month := int(d[2])*10 + int(d[3])
	day := int(d[4])*10 + int(d[5])

	if year < 19 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	switch month {
	case 4, 6, 9, 11:
		if day > 30 {
			return false
		}
	case 2:
		maxDay := 28
		if year%4 == 0 {
			maxDay = 29
		}
		if day > maxDay {
			return false
		}
	}
	return true
}

// Leq performs the byte-wise lexicographic comparison over 6 octets
// that "from <= until" requires.
func Leq(left, right [6]byte) bool {
	for i := 0; i < 6; i++ {
		if left[i] != right[i] {
			return left[i] < right[i]
		}
	}
	return true
}

// Check runs the conjunction of name, date, ordering and public-key
// group checks for a standalone CVC.
func Check(c *CVC) error {
	if !CheckNameString(c.Authority) {
		return newErr(KindBadName, "authority")
	}
	if !CheckNameString(c.Holder) {
		return newErr(KindBadName, "holder")
	}
	if !CheckDate(c.From) {
		return newErr(KindBadDate, "from")
	}
	if !CheckDate(c.Until) {
		return newErr(KindBadDate, "until")
	}
	if !Leq(c.From, c.Until) {
		return newErr(KindBadDate, "from > until")
	}
	curve, err := curveByPubLen(c.PubkeyLen)
	if err != nil {
		return err
	}
	if err := curve.ValPubkey(c.Pubkey); err != nil {
		return wrapErr(KindBadPubkey, "pubkey", err)
	}
	return nil
}

// Check2 additionally requires that child.authority equals
// parent.holder and that child.from falls within [parent.from,
// parent.until].
func Check2(child, parent *CVC) error {
	if err := Check(child); err != nil {
		return err
	}
	if child.Authority != parent.Holder {
		return newErr(KindBadName, "child.authority != parent.holder")
	}
	if !Leq(parent.From, child.From) || !Leq(child.From, parent.Until) {
		return newErr(KindBadDate, "child.from outside parent validity")
	}
	return nil
}
