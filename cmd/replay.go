// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sixservo/armlink/pkg/capture"
	"github.com/sixservo/armlink/pkg/poseframe"
)

var replayNoPacing bool

var replayCmd = &cobra.Command{
	Use:   "replay <capture-file>",
	Short: "Replay a captured frame session over the connection",
	Long: `Read a capture file and retransmit its pose frames over the connection,
preserving the original pacing between frames.

The framing variant recorded in the capture header is used for encoding
unless --framing is given explicitly.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayNoPacing, "no-pacing", false, "Send frames back to back, ignoring recorded offsets")
}

func runReplay(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open capture file: %v", err)
	}
	defer in.Close()

	reader, err := capture.NewReader(in)
	if err != nil {
		return err
	}

	// Prefer the variant the capture was recorded with.
	framing := sess.framing
	if !cmd.Flags().Changed("framing") {
		if f, ok := reader.Framing(); ok {
			framing = f
		}
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Armlink - Frame Replay\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Capture: %s (%s framing)\n", args[0], framing)
	fmt.Printf("Press Ctrl+C to abort\n\n")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	sent := 0
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if !replayNoPacing {
			due := start.Add(time.Duration(rec.OffsetMillis) * time.Millisecond)
			if wait := time.Until(due); wait > 0 {
				select {
				case <-ctx.Done():
					fmt.Printf("aborted after %d frames\n", sent)
					return nil
				case <-time.After(wait):
				}
			}
		}

		data, err := poseframe.EncodePose(rec.Pose, framing)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] skipping record: %v\n", err)
			continue
		}
		if _, err := conn.Write(data); err != nil {
			return fmt.Errorf("write frame: %v", err)
		}
		sent++
		fmt.Printf("sent: %s\n", strings.TrimRight(poseframe.FormatEcho(rec.Pose), "\n"))
	}

	fmt.Printf("\nreplayed %d frames\n", sent)
	return nil
}
