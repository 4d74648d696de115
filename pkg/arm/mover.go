// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

// Package arm ties the pose frame protocol to a motion driver: it runs the
// receive loop and dispatches each completed frame to an opaque
// "move to pose" capability.
package arm

import (
	"fmt"
	"io"

	"github.com/sixservo/armlink/pkg/poseframe"
)

// Mover is the motion driver capability: command all seven joints to the
// given target angles simultaneously. The call is synchronous and issued
// exactly once per completed frame; it is never retried and never receives
// a partial pose.
type Mover interface {
	MoveToPose(pose poseframe.Pose) error
}

// MoverFunc adapts a plain function to the Mover interface.
type MoverFunc func(pose poseframe.Pose) error

// MoveToPose implements Mover.
func (f MoverFunc) MoveToPose(pose poseframe.Pose) error {
	return f(pose)
}

// WriterMover forwards poses downstream by encoding them to wire bytes and
// writing them to w, typically the serial port of the servo controller.
type WriterMover struct {
	w       io.Writer
	framing poseframe.Framing
}

// NewWriterMover creates a mover writing wire frames to w in the given
// framing variant.
func NewWriterMover(w io.Writer, framing poseframe.Framing) *WriterMover {
	return &WriterMover{w: w, framing: framing}
}

// MoveToPose implements Mover.
func (m *WriterMover) MoveToPose(pose poseframe.Pose) error {
	data, err := poseframe.EncodePose(pose, m.framing)
	if err != nil {
		return fmt.Errorf("encode pose: %v", err)
	}
	if _, err := m.w.Write(data); err != nil {
		return fmt.Errorf("write pose: %v", err)
	}
	return nil
}
