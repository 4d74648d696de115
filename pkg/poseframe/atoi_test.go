// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import "testing"

func TestLenientAtoi(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"plain", "123", 123},
		{"zero", "0", 0},
		{"padded", "090", 90},
		{"negative", "-45", -45},
		{"explicit positive", "+45", 45},
		{"trailing garbage ignored", "12ab", 12},
		{"digit then garbage then digits", "1a2", 1},
		{"non-digit prefix parses as zero", "a12", 0},
		{"fully non-numeric", "abc", 0},
		{"sign only", "-", 0},
		{"sign then garbage", "-x12", 0},
		{"leading space not skipped", " 9", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LenientAtoi(tt.input); got != tt.expected {
				t.Errorf("LenientAtoi(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
