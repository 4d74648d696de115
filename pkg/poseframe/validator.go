// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import "fmt"

// AnomalyType represents different types of pose anomalies.
type AnomalyType int

const (
	AnomalyOutOfRange AnomalyType = iota
	AnomalyDecodeError
	AnomalyIncompleteFrame
	AnomalyOversizeToken
)

// ValidationError represents a pose validation finding. Findings are
// observational: the receive loop reports them on the diagnostic stream
// but still dispatches the frame.
type ValidationError struct {
	Type    AnomalyType
	Joint   int
	Message string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	return v.Message
}

// Limits holds per-joint angle bounds for validation.
type Limits struct {
	Min [FieldCount]int
	Max [FieldCount]int
}

// DefaultLimits returns the conventional 0-180 degree servo range for all
// joints.
func DefaultLimits() Limits {
	var l Limits
	for i := range l.Min {
		l.Min[i] = AngleMin
		l.Max[i] = AngleMax
	}
	return l
}

// Validate checks a pose against the limits and returns one finding per
// out-of-range joint (empty if the pose is within limits).
func (l Limits) Validate(p Pose) []ValidationError {
	var errs []ValidationError
	for i, angle := range p {
		if angle < l.Min[i] || angle > l.Max[i] {
			errs = append(errs, ValidationError{
				Type:  AnomalyOutOfRange,
				Joint: i,
				Message: fmt.Sprintf("%s angle %d outside range %d-%d",
					JointName(i), angle, l.Min[i], l.Max[i]),
			})
		}
	}
	return errs
}
