// Package cvctest generates structured, always-valid CVC fixtures for
// the cvc package's tests, using github.com/google/gofuzz the way
// tests/fuzzers/secp256k1 drives property checks from randomized
// structured input rather than hand-written fixed vectors alone.
package cvctest

import (
	"math/rand"

	fuzz "github.com/google/gofuzz"
)

// KeySize is one of the three supported private-key octet lengths.
type KeySize int

const (
	Size256 KeySize = 32
	Size384 KeySize = 48
	Size512 KeySize = 64
)

// Fixture bundles a generated private key with the record fields a
// valid CVC needs; callers combine it with cvc.Wrap/cvc.Issue.
type Fixture struct {
	Priv      []byte
	Authority string
	Holder    string
	From      [6]byte
	Until     [6]byte
}

// New builds a Fixture seeded from seed, with priv sized for size.
// Authority/Holder are random printable names within the schema's
// 8..12 octet bound; From/Until are a random, ordered BCD date pair
// within the schema's 2019..2099 window.
func New(seed int64, size KeySize) *Fixture {
	f := fuzz.NewWithSeed(seed)
	rnd := rand.New(rand.NewSource(seed))

	// gofuzz fills fixed-size arrays to their exact length (unlike a
	// slice, whose length it would also randomize), so the key octets
	// are drawn via a fixed-size array sized per curve and then sliced.
	var priv []byte
	switch size {
	case Size256:
		var arr [32]byte
		f.Fuzz(&arr)
		priv = arr[:]
	case Size384:
		var arr [48]byte
		f.Fuzz(&arr)
		priv = arr[:]
	case Size512:
		var arr [64]byte
		f.Fuzz(&arr)
		priv = arr[:]
	}
	// a zero scalar or one >= group order is rejected by CalcPubkey;
	// clearing the top bit and forcing the top byte non-zero keeps the
	// scalar in [1, N) for all three curve orders (each order's top
	// octet is at least 0x8c) without retry loops.
	priv[0] &= 0x7F
	if priv[0] == 0 {
		priv[0] = 1
	}

	from := randomDate(rnd, 19, 40)
	until := randomDate(rnd, decodeYear(from), 99)
	if string(until[:]) < string(from[:]) {
		from, until = until, from
	}

	return &Fixture{
		Priv:      priv,
		Authority: randomName(rnd),
		Holder:    randomName(rnd),
		From:      from,
		Until:     until,
	}
}

const nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomName(rnd *rand.Rand) string {
	n := 8 + rnd.Intn(5) // 8..12
	b := make([]byte, n)
	for i := range b {
		b[i] = nameAlphabet[rnd.Intn(len(nameAlphabet))]
	}
	return string(b)
}

func decodeYear(d [6]byte) int { return int(d[0])*10 + int(d[1]) }

func randomDate(rnd *rand.Rand, minYear, maxYear int) [6]byte {
	year := minYear + rnd.Intn(maxYear-minYear+1)
	month := 1 + rnd.Intn(12)
	day := 1 + rnd.Intn(28) // 28 keeps every month/year combination valid
	var d [6]byte
	d[0], d[1] = byte(year/10), byte(year%10)
	d[2], d[3] = byte(month/10), byte(month%10)
	d[4], d[5] = byte(day/10), byte(day%10)
	return d
}
