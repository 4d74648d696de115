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
	"github.com/sixservo/armlink/pkg/poseframe"
)

var (
	listenForwardPort string
	listenForwardBaud int
	listenVerbose     bool
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive pose frames and dispatch them to a mover",
	Long: `Run the receive loop: decode pose frames as they arrive, echo the parsed
values, validate against the configured joint limits, and dispatch each
complete frame exactly once.

By default, dispatch prints the move on stdout. With --forward, each pose
is re-encoded and forwarded to a downstream serial port (the servo
controller), making this host the relay the arm firmware originally was.

A frame that stalls past --frame-timeout is dropped with an incomplete
frame diagnostic; an over-long token drops the frame and resynchronizes on
the next delimiter. Neither failure stops the loop.

Supports both serial and WebSocket connections.`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().StringVar(&listenForwardPort, "forward", "", "Forward poses to this downstream serial port")
	listenCmd.Flags().IntVar(&listenForwardBaud, "forward-baud", 9600, "Baud rate of the downstream port")
	listenCmd.Flags().BoolVarP(&listenVerbose, "verbose", "v", false, "Print labeled frames instead of the bare echo line")
}

func runListen(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	var mover arm.Mover
	if listenForwardPort != "" {
		downstream, err := OpenSerialConnection(listenForwardPort, listenForwardBaud)
		if err != nil {
			return err
		}
		defer downstream.Close()
		mover = arm.NewWriterMover(downstream, sess.framing)
	} else {
		mover = arm.MoverFunc(func(pose poseframe.Pose) error {
			fmt.Printf("MOVE %v\n", pose)
			return nil
		})
	}

	fmt.Printf("Armlink - Pose Frame Listener\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Framing: %s, frame timeout: %s\n", sess.framing, sess.frameTimeout)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reader := poseframe.NewReader(conn, sess.newDecoder(), sess.frameTimeout)
	defer reader.Close()

	stats := poseframe.NewStatistics()
	loop := &arm.Loop{
		Reader: reader,
		Mover:  mover,
		Echo:   os.Stdout,
		Errors: os.Stderr,
		Limits: &sess.limits,
		Stats:  stats,
	}
	if listenVerbose {
		loop.EchoFormat = poseframe.FormatFrame
	}

	err = loop.Run(ctx)
	fmt.Fprintf(os.Stderr, "\n%s\n", stats.Summary())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
