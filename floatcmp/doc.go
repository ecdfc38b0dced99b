// SPDX-License-Identifier: MIT

// Package floatcmp provides a total order on float64 values.
//
// Go's built-in comparison operators follow IEEE-754 exactly: NaN is unequal
// to everything, itself included, and < / > cannot place it at all. That
// makes them unsuitable for defining equality and hashing on value types,
// where equality must be reflexive and agree with the hash.
//
// floatcmp keeps numeric equality for every ordinary value (so -0 equals +0)
// and gives NaN a fixed place at the top:
//
//	-Inf < ... < -1 < ±0 < 1 < ... < +Inf < NaN
//
// All NaN payloads collapse into that single value.
//
// ⚙️ Usage:
//
//	floatcmp.Compare(-0.0, 0.0)            // 0
//	floatcmp.Equal(math.NaN(), math.NaN()) // true
//	floatcmp.Compare(math.NaN(), math.Inf(1)) // 1
//
// Bits maps equal values to equal bit patterns (both zeros to +0, every NaN
// to one quiet NaN), so it is safe to feed into a hash.
package floatcmp
