// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package arm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sixservo/armlink/pkg/poseframe"
)

// Loop is the frame-at-a-time control loop: read one complete frame, echo
// the parsed values on the diagnostic stream, validate, dispatch to the
// mover, and resume. Single goroutine; the only concurrency is the
// reader's internal pump.
//
// All frame-level failures (incomplete frame, oversize token, mover
// rejection) are recoverable: the frame is dropped, the failure is
// reported on the error stream, and the loop waits for the next frame.
type Loop struct {
	Reader *poseframe.Reader
	Mover  Mover

	// Echo receives the diagnostic echo line after each parsed frame.
	// Nil disables echoing.
	Echo io.Writer

	// EchoFormat overrides the default echo line (FormatEcho of the
	// pose), e.g. with FormatFrame for labeled output.
	EchoFormat func(*poseframe.Frame) string

	// Errors receives frame-level failure reports. Nil disables them.
	Errors io.Writer

	// Limits enables observational range validation when non-nil.
	// Findings go to Errors; the frame is still dispatched.
	Limits *poseframe.Limits

	// OnFrame, when non-nil, observes each complete frame after the
	// echo and before dispatch.
	OnFrame func(*poseframe.Frame)

	// Stats is updated per frame when non-nil.
	Stats *poseframe.Statistics
}

// Run executes the loop until the context is cancelled or the input
// stream ends. A clean stream end returns nil.
func (l *Loop) Run(ctx context.Context) error {
	for {
		frame, err := l.Reader.ReadFrame(ctx)
		if err != nil {
			switch {
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return ctx.Err()
			case errors.Is(err, io.EOF), errors.Is(err, poseframe.ErrReaderClosed):
				return nil
			}

			var tokenErr *poseframe.TokenTooLongError
			var incompleteErr *poseframe.IncompleteFrameError
			if errors.As(err, &tokenErr) || errors.As(err, &incompleteErr) {
				l.record(nil, err, nil)
				l.reportf("[ERROR] %v", err)
				continue
			}
			return err
		}

		pose := frame.Pose()

		if l.Echo != nil {
			line := poseframe.FormatEcho(pose)
			if l.EchoFormat != nil {
				line = l.EchoFormat(frame)
			}
			fmt.Fprint(l.Echo, line)
		}

		if l.OnFrame != nil {
			l.OnFrame(frame)
		}

		var findings []poseframe.ValidationError
		if l.Limits != nil {
			findings = l.Limits.Validate(pose)
			for _, f := range findings {
				l.reportf("[WARN] %s", f.Message)
			}
		}
		l.record(frame, nil, findings)

		if err := l.Mover.MoveToPose(pose); err != nil {
			l.reportf("[ERROR] move rejected: %v", err)
		}
	}
}

func (l *Loop) record(frame *poseframe.Frame, err error, findings []poseframe.ValidationError) {
	if l.Stats != nil {
		l.Stats.Update(frame, err, findings)
	}
}

func (l *Loop) reportf(format string, args ...interface{}) {
	if l.Errors != nil {
		fmt.Fprintf(l.Errors, format+"\n", args...)
	}
}
