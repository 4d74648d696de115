// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import "time"

// Decoder implements the pose frame decoder state machine. One decoder
// handles one framing variant; construct it with the variant the deployed
// controller speaks.
//
// The decoder owns all per-frame state (token buffer, field cursor) and
// fully resets it at every frame boundary, so a single decoder can be
// reused for the lifetime of a connection.
type Decoder struct {
	framing  Framing
	tokenCap int

	state      int    // delimited framing only
	token      []byte // characters of the field being filled
	fields     Pose
	fieldIndex int // next field to fill, always in [0, FieldCount]
	charIndex  int // fixed framing: characters consumed of the current frame
	rawBuffer  []byte
}

// NewDecoder creates a decoder for the given framing variant with the
// default token capacity.
func NewDecoder(framing Framing) *Decoder {
	return NewDecoderCapacity(framing, DefaultTokenCapacity)
}

// NewDecoderCapacity creates a decoder with an explicit token capacity.
// The capacity bounds delimited tokens only; fixed-width fields are bounded
// by the frame geometry.
func NewDecoderCapacity(framing Framing, tokenCapacity int) *Decoder {
	if tokenCapacity < FixedFieldWidth {
		tokenCapacity = FixedFieldWidth
	}
	return &Decoder{
		framing:   framing,
		tokenCap:  tokenCapacity,
		token:     make([]byte, 0, tokenCapacity),
		rawBuffer: make([]byte, 0, FixedFrameLength*2),
	}
}

// Framing returns the decoder's framing variant.
func (d *Decoder) Framing() Framing {
	return d.framing
}

// Reset resets the decoder to the start of a fresh frame, discarding any
// partial state.
func (d *Decoder) Reset() {
	d.state = stateToken
	d.token = d.token[:0]
	d.fields = Pose{}
	d.fieldIndex = 0
	d.charIndex = 0
	d.rawBuffer = d.rawBuffer[:0]
}

// Receiving reports whether a frame is in progress, i.e. at least one byte
// of it has been consumed. Resynchronization after a token overrun does not
// count as receiving.
func (d *Decoder) Receiving() bool {
	if d.framing == FramingFixed {
		return d.charIndex > 0
	}
	return d.state == stateToken && (d.fieldIndex > 0 || len(d.token) > 0)
}

// FieldsComplete returns how many fields of the in-progress frame have been
// filled so far.
func (d *Decoder) FieldsComplete() int {
	return d.fieldIndex
}

// RawBytes returns the raw bytes accumulated since the last frame boundary
// or reset. Useful for diagnostics on a stalled or garbled stream.
func (d *Decoder) RawBytes() []byte {
	return d.rawBuffer
}

// DecodeByte processes a single byte through the decoder state machine.
// Returns a completed frame, or nil while the frame is incomplete.
// Returns an error when a delimited token overruns its capacity; the
// in-progress frame is discarded and the decoder resynchronizes on the
// next delimiter.
func (d *Decoder) DecodeByte(b byte) (*Frame, error) {
	d.rawBuffer = append(d.rawBuffer, b)

	if d.framing == FramingFixed {
		return d.decodeFixed(b), nil
	}
	return d.decodeDelimited(b)
}

// decodeFixed consumes one byte of a fixed-width frame. The cursor is the
// absolute character position in [0, FixedFrameLength).
func (d *Decoder) decodeFixed(b byte) *Frame {
	pos := d.charIndex
	d.charIndex++

	if pos < LeadFieldWidth {
		d.token = append(d.token, b)
		if pos == LeadFieldWidth-1 {
			d.closeField()
		}
		return d.finishIfComplete()
	}

	// Offset 0 within each trailing field is the filler column.
	offset := (pos - LeadFieldWidth) % FixedFieldWidth
	if offset > 0 {
		d.token = append(d.token, b)
	}
	if offset == FixedFieldWidth-1 {
		d.closeField()
	}
	return d.finishIfComplete()
}

// decodeDelimited consumes one byte of a space-delimited frame.
func (d *Decoder) decodeDelimited(b byte) (*Frame, error) {
	if d.state == stateResync {
		if b == Delimiter {
			// Overrun frame fully discarded; the next byte starts a
			// fresh frame at field 0.
			d.Reset()
		}
		return nil, nil
	}

	if b == Delimiter {
		d.closeField()
		return d.finishIfComplete(), nil
	}

	if len(d.token) >= d.tokenCap {
		err := &TokenTooLongError{
			Field:    d.fieldIndex,
			Length:   len(d.token) + 1,
			Capacity: d.tokenCap,
		}
		d.state = stateResync
		d.token = d.token[:0]
		d.fieldIndex = 0
		return nil, err
	}

	d.token = append(d.token, b)
	return nil, nil
}

// closeField converts the current token and advances the field cursor.
func (d *Decoder) closeField() {
	d.fields[d.fieldIndex] = LenientAtoi(string(d.token))
	d.fieldIndex++
	d.token = d.token[:0]
}

// finishIfComplete returns the completed frame and resets the decoder once
// all fields are filled. Partial frames are never surfaced.
func (d *Decoder) finishIfComplete() *Frame {
	if d.fieldIndex < FieldCount {
		return nil
	}
	frame := NewFrame(d.fields, time.Now())
	d.Reset()
	return frame
}
