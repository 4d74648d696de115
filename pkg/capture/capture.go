// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

// Package capture records decoded pose frames to a compact CBOR stream
// for later inspection or replay. A capture file is one Header followed
// by zero or more Records, each CBOR-encoded.
package capture

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/sixservo/armlink/pkg/poseframe"
)

// FormatVersion is the current capture file format version.
const FormatVersion = 1

// Header opens a capture file.
type Header struct {
	Version     int    `cbor:"1,keyasint"`
	Framing     string `cbor:"2,keyasint"`
	CreatedUnix int64  `cbor:"3,keyasint"`
}

// Record holds one captured frame. Offsets are milliseconds since the
// first captured frame, preserving pacing for replay.
type Record struct {
	OffsetMillis int64                     `cbor:"1,keyasint"`
	Pose         [poseframe.FieldCount]int `cbor:"2,keyasint"`
}

// Writer appends frames to a capture stream.
type Writer struct {
	enc   *cbor.Encoder
	first time.Time
	count int
}

// NewWriter writes the capture header to w and returns a writer for
// appending frames.
func NewWriter(w io.Writer, framing poseframe.Framing) (*Writer, error) {
	enc := cbor.NewEncoder(w)
	header := Header{
		Version:     FormatVersion,
		Framing:     framing.String(),
		CreatedUnix: time.Now().Unix(),
	}
	if err := enc.Encode(header); err != nil {
		return nil, fmt.Errorf("write capture header: %v", err)
	}
	return &Writer{enc: enc}, nil
}

// Write appends one frame. The first frame written defines offset zero.
func (w *Writer) Write(frame *poseframe.Frame) error {
	ts := frame.Timestamp()
	if w.count == 0 {
		w.first = ts
	}
	w.count++

	rec := Record{
		OffsetMillis: ts.Sub(w.first).Milliseconds(),
		Pose:         frame.Pose(),
	}
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("write capture record: %v", err)
	}
	return nil
}

// Count returns how many frames have been written.
func (w *Writer) Count() int {
	return w.count
}

// Reader iterates the records of a capture stream.
type Reader struct {
	dec    *cbor.Decoder
	header Header
}

// NewReader reads and checks the capture header of r.
func NewReader(r io.Reader) (*Reader, error) {
	dec := cbor.NewDecoder(r)

	var header Header
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("read capture header: %v", err)
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported capture version: %d", header.Version)
	}
	return &Reader{dec: dec, header: header}, nil
}

// Header returns the capture file header.
func (r *Reader) Header() Header {
	return r.header
}

// Framing returns the framing variant recorded in the header.
func (r *Reader) Framing() (poseframe.Framing, bool) {
	return poseframe.ParseFraming(r.header.Framing)
}

// Next returns the next record, or io.EOF at the end of the stream.
func (r *Reader) Next() (*Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read capture record: %v", err)
	}
	return &rec, nil
}
