package cvc

import "github.com/tos-network/btok/cvc/der"

// OID arcs for the nine fixed object identifiers: the three the body
// schema carries, plus the three curve and three hash identifiers.
// 1.2.112.0.2.0.34.101.NN.* is the national STB arc.
var (
	oidBignPubkey    = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 45, 2, 1})
	oidEIDAccess     = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 79, 6, 1})
	oidESignAccess   = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 79, 6, 2})
	oidCurveBign256  = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 1})
	oidCurveBign384  = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 2})
	oidCurveBign512  = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 3})
	oidHashBelt256   = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 31, 81})
	oidHashBash192   = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 77, 12})
	oidHashBash256   = der.WriteOID([]int{1, 2, 112, 0, 2, 0, 34, 101, 77, 13})
)
