// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sixservo/armlink/pkg/poseframe"
)

var frameTestTimeout int

var frameTestCmd = &cobra.Command{
	Use:   "frame_test",
	Short: "Test connection by waiting for a valid pose frame",
	Long: `Wait for one complete pose frame on the connection until timeout.

This command connects to a serial port or WebSocket and waits for a
complete seven-field frame in the configured framing variant. Incomplete
frames and over-long tokens are reported and skipped.

Exit codes:
  0 - Frame received before timeout
  1 - Timeout reached without receiving a complete frame
  2 - Connection error

Useful for checking wiring, baud rate, and framing variant against a live
arm controller.`,
	RunE: runFrameTest,
}

func init() {
	rootCmd.AddCommand(frameTestCmd)
	frameTestCmd.Flags().IntVar(&frameTestTimeout, "timeout", 10, "Timeout in seconds to wait for a frame")
}

func runFrameTest(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	fmt.Printf("Armlink - Frame Test\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Framing: %s\n", sess.framing)
	fmt.Printf("Timeout: %d seconds\n", frameTestTimeout)
	fmt.Printf("Waiting for a complete pose frame...\n\n")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(frameTestTimeout)*time.Second)
	defer cancel()

	reader := poseframe.NewReader(conn, sess.newDecoder(), sess.frameTimeout)
	defer reader.Close()

	for {
		frame, err := reader.ReadFrame(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				fmt.Printf("No complete frame within %d seconds\n", frameTestTimeout)
				os.Exit(1)
			}

			var tokenErr *poseframe.TokenTooLongError
			var incompleteErr *poseframe.IncompleteFrameError
			if errors.As(err, &tokenErr) || errors.As(err, &incompleteErr) {
				fmt.Printf("[ERROR] %v\n", err)
				continue
			}

			fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
			os.Exit(2)
		}

		fmt.Printf("Frame received:\n")
		fmt.Print(poseframe.FormatFrame(frame))
		return nil
	}
}
