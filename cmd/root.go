// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Protocol flags
	configPath       string
	framingName      string
	frameTimeoutFlag string
	tokenCapacity    int
)

var rootCmd = &cobra.Command{
	Use:   "armlink",
	Short: "Armlink 6DOF arm pose link tool",
	Long: `Armlink - host-side tooling for the seven-field pose frame protocol
spoken by serial-attached 6DOF arm controllers.

Provides commands for receiving and dispatching pose frames, sending poses
interactively, jogging joints from a TUI, and capturing or replaying frame
sessions.

Connection modes:
  Serial:    --port /dev/ttyACM0 [--baud 9600]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the ARMLINK_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version: "1.2.0",
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 9600, "Baud rate (serial only)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	// Protocol flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&framingName, "framing", "f", "delimited", "Framing variant: delimited or fixed")
	rootCmd.PersistentFlags().StringVar(&frameTimeoutFlag, "frame-timeout", "2s", "Bounded wait for a started frame to complete")
	rootCmd.PersistentFlags().IntVar(&tokenCapacity, "token-capacity", 0, "Max chars per delimited token (0 = default)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
