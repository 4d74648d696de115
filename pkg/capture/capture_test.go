// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package capture

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/sixservo/armlink/pkg/poseframe"
)

func TestCapture_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, poseframe.FramingDelimited)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	poses := []poseframe.Pose{
		{20, 90, 90, 90, 90, 90, 73},
		{20, 95, 85, 90, 90, 90, 73},
		{20, 100, 80, 90, 90, 90, 40},
	}
	for i, p := range poses {
		frame := poseframe.NewFrame(p, base.Add(time.Duration(i)*250*time.Millisecond))
		if err := w.Write(frame); err != nil {
			t.Fatalf("Write record %d: %v", i, err)
		}
	}
	if w.Count() != 3 {
		t.Errorf("Count = %d, want 3", w.Count())
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Header().Version != FormatVersion {
		t.Errorf("header version = %d", r.Header().Version)
	}
	framing, ok := r.Framing()
	if !ok || framing != poseframe.FramingDelimited {
		t.Errorf("header framing = %v, ok=%v", framing, ok)
	}

	for i, p := range poses {
		rec, err := r.Next()
		if err != nil {
			t.Fatalf("Next record %d: %v", i, err)
		}
		if rec.Pose != p {
			t.Errorf("record %d pose = %v, want %v", i, rec.Pose, p)
		}
		wantOffset := int64(i) * 250
		if rec.OffsetMillis != wantOffset {
			t.Errorf("record %d offset = %d, want %d", i, rec.OffsetMillis, wantOffset)
		}
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestCapture_EmptyStream(t *testing.T) {
	var buf bytes.Buffer

	if _, err := NewWriter(&buf, poseframe.FramingFixed); err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if framing, ok := r.Framing(); !ok || framing != poseframe.FramingFixed {
		t.Errorf("header framing = %v, ok=%v", framing, ok)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF for empty capture, got %v", err)
	}
}

func TestCapture_RejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	enc := cbor.NewEncoder(&buf)
	if err := enc.Encode(Header{Version: 99, Framing: "delimited"}); err != nil {
		t.Fatalf("encode header: %v", err)
	}

	if _, err := NewReader(&buf); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestCapture_RejectsGarbage(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte("not a capture"))); err == nil {
		t.Error("expected error for non-CBOR input")
	}
}
