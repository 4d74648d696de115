// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import (
	"errors"
	"fmt"
	"time"
)

// Statistics tracks frame and error counters for a receive session.
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	TotalFrames      uint64
	ValidFrames      uint64
	IncompleteFrames uint64
	OversizeTokens   uint64
	OutOfRangeFrames uint64

	// Rates (calculated)
	FrameRate float64 // frames/sec
	ErrorRate float64 // errors/sec
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update records one receive-loop outcome: a decoded frame (with any
// validation findings), or a decode/read error.
func (s *Statistics) Update(frame *Frame, err error, validationErrors []ValidationError) {
	s.TotalFrames++

	if err != nil {
		var tokenErr *TokenTooLongError
		var incompleteErr *IncompleteFrameError
		switch {
		case errors.As(err, &tokenErr):
			s.OversizeTokens++
		case errors.As(err, &incompleteErr):
			s.IncompleteFrames++
		}
		return
	}

	if frame == nil {
		return
	}

	if len(validationErrors) > 0 {
		s.OutOfRangeFrames++
	}
	s.ValidFrames++
}

// CalculateRates recalculates the frame and error rates since start.
func (s *Statistics) CalculateRates() {
	now := time.Now()
	elapsed := now.Sub(s.StartTime).Seconds()
	if elapsed <= 0 {
		return
	}

	errorCount := s.IncompleteFrames + s.OversizeTokens
	s.FrameRate = float64(s.ValidFrames) / elapsed
	s.ErrorRate = float64(errorCount) / elapsed
	s.LastUpdateTime = now
}

// Summary returns a one-line counter summary.
func (s *Statistics) Summary() string {
	return fmt.Sprintf("frames=%d valid=%d incomplete=%d oversize=%d out-of-range=%d",
		s.TotalFrames, s.ValidFrames, s.IncompleteFrames, s.OversizeTokens, s.OutOfRangeFrames)
}
