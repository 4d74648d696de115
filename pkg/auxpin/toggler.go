// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

// Package auxpin reimplements the auxiliary digital-output toggler that
// shares the serial command channel with the pose link: single-character
// commands '0' and '1' drive one output pin.
//
// The original firmware's switch statement fell through from the '0' case
// into the '1' case. Whether that was intentional is unknowable from the
// source, so both readings are offered as explicit behaviors instead of
// guessing.
package auxpin

// Pin is one digital output.
type Pin interface {
	Set(high bool) error
}

// PinFunc adapts a plain function to the Pin interface.
type PinFunc func(high bool) error

// Set implements Pin.
func (f PinFunc) Set(high bool) error {
	return f(high)
}

// Behavior selects how the '0' command is interpreted.
type Behavior int

const (
	// BehaviorExclusive treats the commands as an exclusive choice:
	// '0' drives the pin low, '1' drives it high.
	BehaviorExclusive Behavior = iota
	// BehaviorCascade preserves the original fallthrough: '0' drives
	// the pin low and then immediately high, '1' drives it high.
	BehaviorCascade
)

// Toggler consumes command bytes and drives a pin.
type Toggler struct {
	pin      Pin
	behavior Behavior
}

// NewToggler creates a toggler driving pin with the given behavior.
func NewToggler(pin Pin, behavior Behavior) *Toggler {
	return &Toggler{pin: pin, behavior: behavior}
}

// HandleByte applies one command byte. Bytes other than '0' and '1' are
// ignored.
func (t *Toggler) HandleByte(b byte) error {
	switch b {
	case '0':
		if err := t.pin.Set(false); err != nil {
			return err
		}
		if t.behavior == BehaviorCascade {
			return t.pin.Set(true)
		}
		return nil
	case '1':
		return t.pin.Set(true)
	default:
		return nil
	}
}
