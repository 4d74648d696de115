// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import (
	"errors"
	"fmt"
	"time"
)

// ErrReaderClosed is returned by ReadFrame after the reader is closed.
var ErrReaderClosed = errors.New("poseframe: reader closed")

// TokenTooLongError reports a delimited token that exceeded the decoder's
// token capacity. The in-progress frame is discarded and the decoder
// resynchronizes on the next delimiter.
type TokenTooLongError struct {
	Field    int // index of the field being filled when the overrun occurred
	Length   int // token length that would have been reached
	Capacity int
}

func (e *TokenTooLongError) Error() string {
	return fmt.Sprintf("token too long in field %d: %d chars (capacity %d)", e.Field, e.Length, e.Capacity)
}

// IncompleteFrameError reports a frame whose input stream went idle (or
// ended) before all seven fields were filled.
type IncompleteFrameError struct {
	Fields  int           // fields completed before the stream stalled
	Timeout time.Duration // configured frame timeout, zero if the stream ended
}

func (e *IncompleteFrameError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("incomplete frame: %d of %d fields after %s", e.Fields, FieldCount, e.Timeout)
	}
	return fmt.Sprintf("incomplete frame: stream ended after %d of %d fields", e.Fields, FieldCount)
}
