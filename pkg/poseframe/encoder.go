// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import "fmt"

// EncodePose renders a pose to wire bytes in the given framing variant.
//
// Delimited output zero-pads trailing fields to three digits and closes
// every field, including the seventh, with a single space. This matches
// the format the controller's original host-side sender transmitted
// (e.g. "20 090 090 090 090 090 073 ").
//
// Fixed-width output is the 26-character form: a two-digit lead field,
// then six fields of one space filler plus three digits.
func EncodePose(p Pose, framing Framing) ([]byte, error) {
	switch framing {
	case FramingDelimited:
		return encodeDelimited(p)
	case FramingFixed:
		return encodeFixed(p)
	default:
		return nil, fmt.Errorf("unknown framing variant: %d", framing)
	}
}

func encodeDelimited(p Pose) ([]byte, error) {
	for i, angle := range p {
		if angle < 0 || angle > 999 {
			return nil, fmt.Errorf("field %d out of wire range: %d (want 0-999)", i, angle)
		}
	}

	buf := make([]byte, 0, FixedFrameLength+2)
	buf = append(buf, fmt.Sprintf("%d ", p[0])...)
	for _, angle := range p[1:] {
		buf = append(buf, fmt.Sprintf("%03d ", angle)...)
	}
	return buf, nil
}

func encodeFixed(p Pose) ([]byte, error) {
	if p[0] < 0 || p[0] > 99 {
		return nil, fmt.Errorf("lead field out of wire range: %d (want 0-99)", p[0])
	}
	for i, angle := range p[1:] {
		if angle < 0 || angle > 999 {
			return nil, fmt.Errorf("field %d out of wire range: %d (want 0-999)", i+1, angle)
		}
	}

	buf := make([]byte, 0, FixedFrameLength)
	buf = append(buf, fmt.Sprintf("%02d", p[0])...)
	for _, angle := range p[1:] {
		buf = append(buf, fmt.Sprintf("%c%03d", Delimiter, angle)...)
	}
	return buf, nil
}

// MustEncodePose encodes a pose and panics on error. Use EncodePose when
// the pose comes from untrusted input.
func MustEncodePose(p Pose, framing Framing) []byte {
	data, err := EncodePose(p, framing)
	if err != nil {
		panic(fmt.Sprintf("poseframe: encode error: %v", err))
	}
	return data
}
