// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

// Package poseframe implements the Armlink pose frame wire protocol.
//
// A pose frame is a textual serial transmission carrying seven target joint
// angles for a six-degree-of-freedom arm plus gripper. This package provides
// frame decoding, encoding, diagnostic formatting, and range validation for
// both framing variants spoken by arm controllers in the field.
package poseframe

// FieldCount is the number of angle fields in a complete frame.
const FieldCount = 7

// Fixed-width framing geometry. The lead field is two bare digit characters;
// every following field is one filler character plus three digit characters.
const (
	LeadFieldWidth   = 2
	FixedFieldWidth  = 4
	FixedFrameLength = LeadFieldWidth + (FieldCount-1)*FixedFieldWidth // 26
)

// Delimiter closes a field in delimited framing.
const Delimiter = ' '

// DefaultTokenCapacity bounds the length of a single delimited token.
// Tokens exceeding the capacity abort the in-progress frame with a
// TokenTooLongError instead of overrunning the buffer.
const DefaultTokenCapacity = 8

// Conventional servo angle range, used by the validator only. The decoder
// itself never clamps.
const (
	AngleMin = 0
	AngleMax = 180
)

// Framing selects the tokenization discipline of the wire format.
type Framing int

const (
	// FramingDelimited frames fields as digit runs separated by single
	// ASCII spaces. A frame completes when the seventh field closes.
	FramingDelimited Framing = iota
	// FramingFixed frames fields at fixed character positions, 26
	// characters per frame, no terminator.
	FramingFixed
)

// String returns the config-file spelling of the framing variant.
func (f Framing) String() string {
	switch f {
	case FramingDelimited:
		return "delimited"
	case FramingFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseFraming converts a config-file spelling to a Framing value.
func ParseFraming(s string) (Framing, bool) {
	switch s {
	case "delimited", "":
		return FramingDelimited, true
	case "fixed":
		return FramingFixed, true
	default:
		return FramingDelimited, false
	}
}

// Decoder states for delimited framing (internal). Fixed-width framing is
// purely positional and needs no state beyond the cursor.
const (
	stateToken  = iota // accumulating the current token
	stateResync        // discarding bytes until the next delimiter
)
