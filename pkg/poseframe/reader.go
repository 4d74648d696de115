// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sixservo Robotics

package poseframe

import (
	"context"
	"io"
	"sync"
	"time"
)

// Reader assembles complete frames from a byte stream.
//
// A pump goroutine drains the underlying stream into a byte channel;
// ReadFrame consumes bytes through the decoder until a frame completes.
// Once the first byte of a frame has been consumed, the frame must
// complete within the configured timeout or ReadFrame fails with
// IncompleteFrameError. This replaces the unbounded busy-spin of the
// original firmware loop with a bounded wait.
type Reader struct {
	dec     *Decoder
	timeout time.Duration

	bytes     chan byte
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	readErr error
}

// NewReader creates a reader over src using the given decoder. A
// frameTimeout of zero disables the bounded wait (the reader then blocks
// until the stream delivers a full frame or ends).
//
// The reader starts its pump goroutine immediately. Closing the reader
// stops frame delivery; close the underlying stream as well to unblock
// a pump stuck in a read call.
func NewReader(src io.Reader, dec *Decoder, frameTimeout time.Duration) *Reader {
	r := &Reader{
		dec:     dec,
		timeout: frameTimeout,
		bytes:   make(chan byte, 256),
		done:    make(chan struct{}),
	}
	go r.pump(src)
	return r
}

// pump drains src into the byte channel until the stream ends or the
// reader is closed.
func (r *Reader) pump(src io.Reader) {
	defer close(r.bytes)

	buf := make([]byte, 128)
	for {
		select {
		case <-r.done:
			return
		default:
		}

		n, err := src.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case r.bytes <- buf[i]:
			case <-r.done:
				return
			}
		}
		if err != nil {
			r.mu.Lock()
			r.readErr = err
			r.mu.Unlock()
			return
		}
	}
}

func (r *Reader) err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readErr
}

// Close stops frame delivery. Safe to call more than once.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
	})
	return nil
}

// ReadFrame blocks until one complete frame is decoded, the context is
// cancelled, the stream ends, or the frame times out.
//
// Decode and timeout failures are recoverable at the frame boundary: the
// bad frame is dropped, the decoder resynchronizes, and the next
// ReadFrame call waits for the next frame. The stream ending mid-frame
// is reported as an IncompleteFrameError; a clean end between frames is
// io.EOF.
func (r *Reader) ReadFrame(ctx context.Context) (*Frame, error) {
	var timer *time.Timer
	var deadline <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		// Arm the frame timeout as soon as the frame's first byte has
		// been consumed.
		if r.timeout > 0 && deadline == nil && r.dec.Receiving() {
			timer = time.NewTimer(r.timeout)
			deadline = timer.C
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-r.done:
			return nil, ErrReaderClosed

		case <-deadline:
			fields := r.dec.FieldsComplete()
			r.dec.Reset()
			return nil, &IncompleteFrameError{Fields: fields, Timeout: r.timeout}

		case b, ok := <-r.bytes:
			if !ok {
				if r.dec.Receiving() {
					fields := r.dec.FieldsComplete()
					r.dec.Reset()
					return nil, &IncompleteFrameError{Fields: fields}
				}
				if err := r.err(); err != nil && err != io.EOF {
					return nil, err
				}
				return nil, io.EOF
			}

			frame, err := r.dec.DecodeByte(b)
			if err != nil {
				return nil, err
			}
			if frame != nil {
				return frame, nil
			}
		}
	}
}
