// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sixservo/armlink/pkg/poseframe"
)

var sendCmd = &cobra.Command{
	Use:   "send [angle0 ... angle6]",
	Short: "Send a pose frame to the arm controller",
	Long: `Transmit one pose frame over the connection.

With seven angle arguments, sends a single frame and exits. With no
arguments, prompts for each joint angle interactively and sends a frame
per round, until EOF (Ctrl+D).

Angles are rendered in the configured framing variant; delimited frames
zero-pad trailing fields to three digits, matching what arm controllers
in the field expect.`,
	Args: cobra.RangeArgs(0, poseframe.FieldCount),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	if len(args) != 0 && len(args) != poseframe.FieldCount {
		return fmt.Errorf("need exactly %d angles, got %d", poseframe.FieldCount, len(args))
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	if len(args) == poseframe.FieldCount {
		var pose poseframe.Pose
		for i, a := range args {
			angle, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("invalid angle %q for %s: %v", a, sess.jointNames[i], err)
			}
			pose[i] = angle
		}
		return sendPose(conn, sess, pose)
	}

	// Interactive mode: one prompt per joint, one frame per round.
	fmt.Printf("Armlink - Pose Sender\n")
	fmt.Printf("Connection: %s (%s framing)\n", connInfo, sess.framing)
	fmt.Printf("Ctrl+D to exit\n\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		var pose poseframe.Pose
		aborted := false
		for i := range pose {
			fmt.Printf("%s: ", sess.jointNames[i])
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read input: %v", err)
				}
				fmt.Println()
				return nil
			}
			text := strings.TrimSpace(scanner.Text())
			angle, err := strconv.Atoi(text)
			if err != nil {
				fmt.Printf("invalid angle %q, frame aborted\n\n", text)
				aborted = true
				break
			}
			pose[i] = angle
		}
		if aborted {
			continue
		}

		if err := sendPose(conn, sess, pose); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			continue
		}
		fmt.Printf("sent: %s\n", strings.TrimRight(poseframe.FormatEcho(pose), "\n"))
	}
}

func sendPose(conn Connection, sess *session, pose poseframe.Pose) error {
	data, err := poseframe.EncodePose(pose, sess.framing)
	if err != nil {
		return err
	}
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("write frame: %v", err)
	}
	return nil
}
