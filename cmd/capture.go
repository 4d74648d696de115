// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sixservo/armlink/pkg/arm"
	"github.com/sixservo/armlink/pkg/capture"
	"github.com/sixservo/armlink/pkg/poseframe"
)

var captureOutput string

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Record incoming pose frames to a capture file",
	Long: `Decode pose frames from the connection and append them, with relative
timestamps, to a CBOR capture file for later inspection or replay.

Recording runs until Ctrl+C or the stream ends. Incomplete frames and
over-long tokens are reported on stderr and skipped; only complete frames
are recorded.`,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().StringVarP(&captureOutput, "output", "o", "", "Capture file to write (required)")
	captureCmd.MarkFlagRequired("output")
}

func runCapture(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	out, err := os.Create(captureOutput)
	if err != nil {
		return fmt.Errorf("create capture file: %v", err)
	}
	defer out.Close()

	writer, err := capture.NewWriter(out, sess.framing)
	if err != nil {
		return err
	}

	fmt.Printf("Armlink - Frame Capture\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Output: %s\n", captureOutput)
	fmt.Printf("Press Ctrl+C to stop\n\n")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reader := poseframe.NewReader(conn, sess.newDecoder(), sess.frameTimeout)
	defer reader.Close()

	var writeErr error
	loop := &arm.Loop{
		Reader:     reader,
		Errors:     os.Stderr,
		Echo:       os.Stdout,
		EchoFormat: poseframe.FormatFrame,
		Mover: arm.MoverFunc(func(pose poseframe.Pose) error {
			return nil
		}),
		OnFrame: func(frame *poseframe.Frame) {
			if err := writer.Write(frame); err != nil && writeErr == nil {
				writeErr = err
			}
		},
	}

	err = loop.Run(ctx)
	fmt.Printf("\ncaptured %d frames to %s\n", writer.Count(), captureOutput)
	if writeErr != nil {
		return writeErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
