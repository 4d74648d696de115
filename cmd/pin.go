// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sixservo/armlink/pkg/auxpin"
)

var (
	pinWatch   bool
	pinCascade bool
)

var pinCmd = &cobra.Command{
	Use:   "pin <0|1>",
	Short: "Drive the auxiliary output pin",
	Long: `Send a single-character command ('0' or '1') for the auxiliary digital
output that shares the controller's serial channel.

With --watch, instead of sending, consume command bytes from the
connection and print the resulting pin transitions. The original firmware
fell through from the '0' case into the '1' case; --cascade reproduces
that reading, the default treats the commands as an exclusive choice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPin,
}

func init() {
	rootCmd.AddCommand(pinCmd)
	pinCmd.Flags().BoolVar(&pinWatch, "watch", false, "Consume pin commands from the connection and print transitions")
	pinCmd.Flags().BoolVar(&pinCascade, "cascade", false, "Interpret '0' as low-then-high (original fallthrough)")
}

func runPin(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	if pinWatch {
		return watchPin(conn, connInfo)
	}

	if len(args) != 1 || (args[0] != "0" && args[0] != "1") {
		return fmt.Errorf("need a single command, 0 or 1")
	}

	if _, err := conn.Write([]byte(args[0])); err != nil {
		return fmt.Errorf("write pin command: %v", err)
	}
	fmt.Printf("sent pin command %s\n", args[0])
	return nil
}

func watchPin(conn Connection, connInfo string) error {
	behavior := auxpin.BehaviorExclusive
	if pinCascade {
		behavior = auxpin.BehaviorCascade
	}

	toggler := auxpin.NewToggler(auxpin.PinFunc(func(high bool) error {
		state := "LOW"
		if high {
			state = "HIGH"
		}
		fmt.Printf("[%s] pin %s\n", time.Now().Format("15:04:05.000"), state)
		return nil
	}), behavior)

	fmt.Printf("Armlink - Pin Watch\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	buf := make([]byte, 64)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			if err == ErrConnectionClosed || err == io.EOF {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
			continue
		}
		for i := 0; i < n; i++ {
			if err := toggler.HandleByte(buf[i]); err != nil {
				fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			}
		}
	}
}
