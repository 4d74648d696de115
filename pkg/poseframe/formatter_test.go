// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import (
	"strings"
	"testing"
	"time"
)

// ============================================================
// Formatter Tests
// ============================================================

func TestFormatEcho(t *testing.T) {
	got := FormatEcho(Pose{20, 90, 90, 90, 90, 90, 73})
	if got != "20 90 90 90 90 90 73\n" {
		t.Errorf("FormatEcho = %q", got)
	}
}

func TestFormatFrame(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.Local)
	f := NewFrame(Pose{10, 20, 30, 40, 50, 60, 70}, ts)

	got := FormatFrame(f)
	expected := "[09:26:53.589] POSE base=10 shoulder=20 elbow=30 wrist_pitch=40 wrist_roll=50 wrist_yaw=60 gripper=70\n"
	if got != expected {
		t.Errorf("FormatFrame = %q, want %q", got, expected)
	}
}

func TestJointName(t *testing.T) {
	if got := JointName(0); got != "base" {
		t.Errorf("JointName(0) = %q", got)
	}
	if got := JointName(6); got != "gripper" {
		t.Errorf("JointName(6) = %q", got)
	}
	if got := JointName(9); got != "joint_9" {
		t.Errorf("JointName(9) = %q", got)
	}
	if got := JointName(-1); !strings.HasPrefix(got, "joint_") {
		t.Errorf("JointName(-1) = %q", got)
	}
}

// ============================================================
// Validator Tests
// ============================================================

func TestLimits_Validate(t *testing.T) {
	limits := DefaultLimits()

	if errs := limits.Validate(Pose{0, 45, 90, 135, 180, 90, 73}); len(errs) != 0 {
		t.Errorf("expected no findings for in-range pose, got %v", errs)
	}

	errs := limits.Validate(Pose{200, 90, 90, 90, 90, 90, 999})
	if len(errs) != 2 {
		t.Fatalf("expected 2 findings, got %d: %v", len(errs), errs)
	}
	if errs[0].Joint != 0 || errs[0].Type != AnomalyOutOfRange {
		t.Errorf("first finding = %+v", errs[0])
	}
	if errs[1].Joint != 6 {
		t.Errorf("second finding joint = %d, want 6", errs[1].Joint)
	}
	if !strings.Contains(errs[0].Message, "base") {
		t.Errorf("finding message missing joint name: %q", errs[0].Message)
	}
}

func TestLimits_ValidateCustomBounds(t *testing.T) {
	limits := DefaultLimits()
	limits.Min[6] = 10
	limits.Max[6] = 80

	if errs := limits.Validate(Pose{90, 90, 90, 90, 90, 90, 5}); len(errs) != 1 {
		t.Errorf("expected 1 finding for narrowed gripper range, got %v", errs)
	}
	if errs := limits.Validate(Pose{90, 90, 90, 90, 90, 90, 45}); len(errs) != 0 {
		t.Errorf("expected no findings inside narrowed range, got %v", errs)
	}
}

// ============================================================
// Statistics Tests
// ============================================================

func TestStatistics_Update(t *testing.T) {
	stats := NewStatistics()

	frame := NewFrame(Pose{20, 90, 90, 90, 90, 90, 73}, time.Now())
	stats.Update(frame, nil, nil)
	stats.Update(frame, nil, []ValidationError{{Type: AnomalyOutOfRange, Joint: 0}})
	stats.Update(nil, &TokenTooLongError{Field: 1, Length: 9, Capacity: 8}, nil)
	stats.Update(nil, &IncompleteFrameError{Fields: 3}, nil)

	if stats.TotalFrames != 4 {
		t.Errorf("TotalFrames = %d, want 4", stats.TotalFrames)
	}
	if stats.ValidFrames != 2 {
		t.Errorf("ValidFrames = %d, want 2", stats.ValidFrames)
	}
	if stats.OutOfRangeFrames != 1 {
		t.Errorf("OutOfRangeFrames = %d, want 1", stats.OutOfRangeFrames)
	}
	if stats.OversizeTokens != 1 {
		t.Errorf("OversizeTokens = %d, want 1", stats.OversizeTokens)
	}
	if stats.IncompleteFrames != 1 {
		t.Errorf("IncompleteFrames = %d, want 1", stats.IncompleteFrames)
	}
}

func TestStatistics_Summary(t *testing.T) {
	stats := NewStatistics()
	stats.Update(NewFrame(Pose{}, time.Now()), nil, nil)

	summary := stats.Summary()
	if !strings.Contains(summary, "frames=1") || !strings.Contains(summary, "valid=1") {
		t.Errorf("Summary = %q", summary)
	}
}
