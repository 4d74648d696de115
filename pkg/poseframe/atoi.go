// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

// LenientAtoi converts a token to an integer with deliberate C-atoi
// semantics: an optional leading sign, then a run of decimal digits.
// Conversion stops at the first non-digit character; trailing garbage is
// ignored. A token with a non-digit prefix, or an empty token, converts
// to zero. Leading whitespace is not skipped.
//
// This is the protocol's malformed-token policy: bad tokens coerce to
// zero rather than failing the frame.
func LenientAtoi(s string) int {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}

	if neg {
		return -n
	}
	return n
}
