// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import (
	"errors"
	"testing"
)

// ============================================================
// Test Helpers
// ============================================================

// feedString pushes every byte of s through the decoder, collecting
// completed frames and decode errors.
func feedString(d *Decoder, s string) (frames []*Frame, errs []error) {
	for i := 0; i < len(s); i++ {
		frame, err := d.DecodeByte(s[i])
		if err != nil {
			errs = append(errs, err)
		}
		if frame != nil {
			frames = append(frames, frame)
		}
	}
	return frames, errs
}

func expectPose(t *testing.T, frame *Frame, want Pose) {
	t.Helper()
	if frame == nil {
		t.Fatal("expected a frame, got nil")
	}
	if frame.Pose() != want {
		t.Errorf("pose mismatch: got %v, want %v", frame.Pose(), want)
	}
}

// ============================================================
// Delimited Framing
// ============================================================

func TestDecoder_Delimited_BasicFrame(t *testing.T) {
	d := NewDecoder(FramingDelimited)

	frames, errs := feedString(d, "10 20 30 40 50 60 70 ")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	expectPose(t, frames[0], Pose{10, 20, 30, 40, 50, 60, 70})
}

func TestDecoder_Delimited_SenderFormat(t *testing.T) {
	// The zero-padded form the original host-side sender transmits.
	d := NewDecoder(FramingDelimited)

	frames, errs := feedString(d, "20 090 090 090 090 090 073 ")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	expectPose(t, frames[0], Pose{20, 90, 90, 90, 90, 90, 73})
}

func TestDecoder_Delimited_TrailingInputBelongsToNextFrame(t *testing.T) {
	d := NewDecoder(FramingDelimited)

	frames, errs := feedString(d, "10 20 30 40 50 60 70 99")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if !d.Receiving() {
		t.Error("trailing bytes should start the next frame")
	}
	if d.FieldsComplete() != 0 {
		t.Errorf("next frame should have 0 complete fields, got %d", d.FieldsComplete())
	}
}

func TestDecoder_Delimited_Idempotence(t *testing.T) {
	// Two identical frames in sequence decode to two identical poses;
	// decoder state fully resets between frames.
	d := NewDecoder(FramingDelimited)

	frames, errs := feedString(d, "10 20 30 40 50 60 70 10 20 30 40 50 60 70 ")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Pose() != frames[1].Pose() {
		t.Errorf("frames differ: %v vs %v", frames[0].Pose(), frames[1].Pose())
	}
	if d.Receiving() || d.FieldsComplete() != 0 {
		t.Error("decoder state should be fully reset after the second frame")
	}
}

func TestDecoder_Delimited_LenientTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Pose
	}{
		{
			name:     "non-digit prefix token",
			input:    "10 x5 30 40 50 60 70 ",
			expected: Pose{10, 0, 30, 40, 50, 60, 70},
		},
		{
			name:     "fully non-numeric token",
			input:    "10 abc 30 40 50 60 70 ",
			expected: Pose{10, 0, 30, 40, 50, 60, 70},
		},
		{
			name:     "trailing garbage in token",
			input:    "10 25x 30 40 50 60 70 ",
			expected: Pose{10, 25, 30, 40, 50, 60, 70},
		},
		{
			name:     "negative angle",
			input:    "10 -20 30 40 50 60 70 ",
			expected: Pose{10, -20, 30, 40, 50, 60, 70},
		},
		{
			name:     "empty field from double delimiter",
			input:    "10  30 40 50 60 70 80 ",
			expected: Pose{10, 0, 30, 40, 50, 60, 70},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(FramingDelimited)
			frames, errs := feedString(d, tt.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected decode errors: %v", errs)
			}
			if len(frames) != 1 {
				t.Fatalf("expected 1 frame, got %d", len(frames))
			}
			expectPose(t, frames[0], tt.expected)
		})
	}
}

func TestDecoder_Delimited_TokenTooLong(t *testing.T) {
	d := NewDecoderCapacity(FramingDelimited, 8)

	// 9th character of the second token overruns the capacity.
	frames, errs := feedString(d, "10 123456789")
	if len(frames) != 0 {
		t.Fatalf("expected no frames, got %d", len(frames))
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}

	var tokenErr *TokenTooLongError
	if !errors.As(errs[0], &tokenErr) {
		t.Fatalf("expected TokenTooLongError, got %T: %v", errs[0], errs[0])
	}
	if tokenErr.Field != 1 {
		t.Errorf("expected overrun in field 1, got %d", tokenErr.Field)
	}
	if tokenErr.Capacity != 8 {
		t.Errorf("expected capacity 8, got %d", tokenErr.Capacity)
	}
}

func TestDecoder_Delimited_ResyncAfterOverrun(t *testing.T) {
	d := NewDecoderCapacity(FramingDelimited, 8)

	// The overrun frame is discarded; the decoder swallows the rest of
	// the oversize token and resynchronizes on the next delimiter. The
	// following frame decodes cleanly.
	frames, errs := feedString(d, "10 1234567890123 20 30 40 50 60 70 80 90 ")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame after resync, got %d", len(frames))
	}
	expectPose(t, frames[0], Pose{20, 30, 40, 50, 60, 70, 80})
}

func TestDecoder_Delimited_NotReceivingDuringResync(t *testing.T) {
	d := NewDecoderCapacity(FramingDelimited, 8)

	_, errs := feedString(d, "123456789999")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if d.Receiving() {
		t.Error("decoder should not report receiving while resynchronizing")
	}
}

// ============================================================
// Fixed-Width Framing
// ============================================================

func TestDecoder_Fixed_BasicFrame(t *testing.T) {
	d := NewDecoder(FramingFixed)

	// 26 characters: 2-digit lead + 6 x (filler + 3 digits).
	frames, errs := feedString(d, "20 090 090 090 090 090 073")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	expectPose(t, frames[0], Pose{20, 90, 90, 90, 90, 90, 73})
}

func TestDecoder_Fixed_FillerColumnIgnored(t *testing.T) {
	// The filler column is positional, not a delimiter: any character
	// there is skipped.
	d := NewDecoder(FramingFixed)

	frames, errs := feedString(d, "07X123X045X000X180X090X011")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	expectPose(t, frames[0], Pose{7, 123, 45, 0, 180, 90, 11})
}

func TestDecoder_Fixed_MatchesManualSlicing(t *testing.T) {
	input := "42 001 002 003 004 005 006"
	if len(input) != FixedFrameLength {
		t.Fatalf("test input must be %d chars, got %d", FixedFrameLength, len(input))
	}

	// Reference decomposition: [0:2], then each 4-char window with the
	// filler column dropped.
	var want Pose
	want[0] = LenientAtoi(input[0:2])
	for i := 1; i < FieldCount; i++ {
		start := LeadFieldWidth + (i-1)*FixedFieldWidth
		want[i] = LenientAtoi(input[start+1 : start+FixedFieldWidth])
	}

	d := NewDecoder(FramingFixed)
	frames, errs := feedString(d, input)
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	expectPose(t, frames[0], want)
}

func TestDecoder_Fixed_BackToBackFrames(t *testing.T) {
	d := NewDecoder(FramingFixed)

	frames, errs := feedString(d, "20 090 090 090 090 090 073"+"10 000 045 090 135 180 001")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	expectPose(t, frames[0], Pose{20, 90, 90, 90, 90, 90, 73})
	expectPose(t, frames[1], Pose{10, 0, 45, 90, 135, 180, 1})
}

func TestDecoder_Fixed_LenientDigits(t *testing.T) {
	d := NewDecoder(FramingFixed)

	// Garbage in a digit window converts to zero or a truncated value.
	frames, errs := feedString(d, "x9 0a0 090 090 090 090 073")
	if len(errs) != 0 {
		t.Fatalf("unexpected decode errors: %v", errs)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	expectPose(t, frames[0], Pose{0, 0, 90, 90, 90, 90, 73})
}

// ============================================================
// Shared Behavior
// ============================================================

func TestDecoder_Reset(t *testing.T) {
	d := NewDecoder(FramingDelimited)

	feedString(d, "10 20 30")
	if !d.Receiving() {
		t.Fatal("decoder should be mid-frame")
	}

	d.Reset()
	if d.Receiving() || d.FieldsComplete() != 0 {
		t.Error("reset should clear all per-frame state")
	}

	// A full frame after reset decodes from scratch.
	frames, errs := feedString(d, "1 2 3 4 5 6 7 ")
	if len(errs) != 0 || len(frames) != 1 {
		t.Fatalf("expected clean decode after reset, got frames=%d errs=%v", len(frames), errs)
	}
	expectPose(t, frames[0], Pose{1, 2, 3, 4, 5, 6, 7})
}

func TestDecoder_RawBytes(t *testing.T) {
	d := NewDecoder(FramingDelimited)

	feedString(d, "10 20")
	raw := d.RawBytes()
	if string(raw) != "10 20" {
		t.Errorf("RawBytes = %q, want %q", raw, "10 20")
	}

	// Raw accumulation clears at the frame boundary.
	feedString(d, " 30 40 50 60 70 ")
	if len(d.RawBytes()) != 0 {
		t.Errorf("RawBytes should be empty after a frame boundary, got %q", d.RawBytes())
	}
}

func TestDecoder_FieldsComplete(t *testing.T) {
	d := NewDecoder(FramingDelimited)

	feedString(d, "10 20 30 ")
	if got := d.FieldsComplete(); got != 3 {
		t.Errorf("FieldsComplete = %d, want 3", got)
	}
}
