// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import "time"

// Pose holds the seven target joint angles of one frame, in wire order.
type Pose [FieldCount]int

// Frame represents one decoded pose frame.
type Frame struct {
	pose      Pose
	timestamp time.Time
}

// NewFrame creates a frame from a pose with the given decode timestamp.
func NewFrame(pose Pose, timestamp time.Time) *Frame {
	return &Frame{pose: pose, timestamp: timestamp}
}

// Pose returns the frame's seven joint angles.
func (f *Frame) Pose() Pose {
	return f.pose
}

// Angle returns the angle of joint i (0 to FieldCount-1).
func (f *Frame) Angle(i int) int {
	return f.pose[i]
}

// Timestamp returns the frame's decode timestamp.
func (f *Frame) Timestamp() time.Time {
	return f.timestamp
}
