// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var jogCmd = &cobra.Command{
	Use:   "jog",
	Short: "Interactive TUI for jogging the arm joint by joint",
	Long: `Jog the arm from an interactive terminal UI.

Arrow keys select a joint and nudge its target angle; 'e' edits an exact
value; enter transmits the pose as one frame. The controller's diagnostic
echo is decoded and shown in the event log, confirming what the firmware
actually parsed.

Supports both serial and WebSocket connections.`,
	RunE: runJog,
}

func init() {
	rootCmd.AddCommand(jogCmd)
}

func runJog(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	m := initialJogModel(conn, connInfo, sess)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Decode the controller's echo stream in the background and feed
	// frames into the TUI.
	done := make(chan struct{})
	defer close(done)
	go jogEchoLoop(p, conn, sess, done)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}

// jogEchoLoop reads the connection and reports decoded echo frames and
// decode errors to the TUI.
func jogEchoLoop(p *tea.Program, conn Connection, sess *session, done <-chan struct{}) {
	decoder := sess.newDecoder()
	buf := make([]byte, 128)

	for {
		select {
		case <-done:
			return
		default:
		}

		n, err := conn.Read(buf)
		if err != nil {
			if err == ErrConnectionClosed {
				p.Send(jogConnLostMsg{})
				return
			}
			// Brief pause before retry on transient errors (e.g., serial)
			time.Sleep(10 * time.Millisecond)
			continue
		}

		for i := 0; i < n; i++ {
			frame, decodeErr := decoder.DecodeByte(buf[i])
			if decodeErr != nil {
				p.Send(jogDecodeErrMsg{err: decodeErr})
				continue
			}
			if frame != nil {
				p.Send(jogEchoMsg{frame: frame})
			}
		}
	}
}
