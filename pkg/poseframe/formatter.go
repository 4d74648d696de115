// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import (
	"fmt"
	"strings"
)

// DefaultJointNames labels the seven fields in wire order.
var DefaultJointNames = [FieldCount]string{
	"base", "shoulder", "elbow", "wrist_pitch", "wrist_roll", "wrist_yaw", "gripper",
}

// JointName returns the default label for field i, or a numeric fallback
// for an out-of-range index.
func JointName(i int) string {
	if i < 0 || i >= FieldCount {
		return fmt.Sprintf("joint_%d", i)
	}
	return DefaultJointNames[i]
}

// FormatEcho renders the diagnostic echo line for a pose: the seven
// integers as decimal text, space-separated, newline-terminated. This is
// the line the receive loop writes back after each successfully parsed
// frame.
func FormatEcho(p Pose) string {
	var b strings.Builder
	for i, angle := range p {
		if i > 0 {
			b.WriteByte(Delimiter)
		}
		fmt.Fprintf(&b, "%d", angle)
	}
	b.WriteByte('\n')
	return b.String()
}

// FormatFrame formats a frame into a human-readable single line with
// timestamp and joint labels.
func FormatFrame(f *Frame) string {
	timestamp := f.Timestamp().Format("15:04:05.000")

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] POSE", timestamp)
	for i, angle := range f.Pose() {
		fmt.Fprintf(&b, " %s=%d", JointName(i), angle)
	}
	b.WriteByte('\n')
	return b.String()
}
