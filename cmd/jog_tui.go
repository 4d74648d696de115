// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sixservo/armlink/pkg/poseframe"
)

// Event log entry
type jogLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// Messages from the echo reader goroutine
type jogEchoMsg struct {
	frame *poseframe.Frame
}
type jogDecodeErrMsg struct {
	err error
}
type jogConnLostMsg struct{}

// TUI model
type jogModel struct {
	conn     Connection
	connInfo string
	sess     *session

	pose    poseframe.Pose
	cursor  int
	editing bool
	input   textinput.Model

	log           []jogLogEntry
	maxLogEntries int
	sentFrames    int
	connLost      bool
	width         int
	height        int
	quitting      bool
}

func initialJogModel(conn Connection, connInfo string, sess *session) jogModel {
	input := textinput.New()
	input.Placeholder = "angle"
	input.CharLimit = 4
	input.Width = 6

	var pose poseframe.Pose
	for i := range pose {
		pose[i] = 90
	}

	return jogModel{
		conn:          conn,
		connInfo:      connInfo,
		sess:          sess,
		pose:          pose,
		input:         input,
		log:           make([]jogLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
}

func (m jogModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m jogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateJogging(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case jogEchoMsg:
		m.addLogEntry(fmt.Sprintf("controller echo: %s",
			strings.TrimRight(poseframe.FormatEcho(msg.frame.Pose()), "\n")), false)

	case jogDecodeErrMsg:
		m.addLogEntry(fmt.Sprintf("DECODE ERROR: %v", msg.err), true)

	case jogConnLostMsg:
		m.connLost = true
		m.addLogEntry("connection lost", true)
	}

	return m, nil
}

func (m jogModel) updateJogging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < poseframe.FieldCount-1 {
			m.cursor++
		}

	case "left", "h":
		m.pose[m.cursor]--
	case "right", "l":
		m.pose[m.cursor]++
	case "pgup":
		m.pose[m.cursor] += 10
	case "pgdown":
		m.pose[m.cursor] -= 10

	case "c":
		for i := range m.pose {
			m.pose[i] = 90
		}
		m.addLogEntry("pose centered", false)

	case "e":
		m.editing = true
		m.input.SetValue(strconv.Itoa(m.pose[m.cursor]))
		m.input.Focus()
		return m, textinput.Blink

	case "enter":
		m.sendPose()
	}

	return m, nil
}

func (m jogModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil

	case "enter":
		angle, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.addLogEntry(fmt.Sprintf("invalid angle %q", m.input.Value()), true)
		} else {
			m.pose[m.cursor] = angle
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *jogModel) sendPose() {
	data, err := poseframe.EncodePose(m.pose, m.sess.framing)
	if err != nil {
		m.addLogEntry(fmt.Sprintf("SEND ERROR: %v", err), true)
		return
	}
	if _, err := m.conn.Write(data); err != nil {
		m.addLogEntry(fmt.Sprintf("SEND ERROR: %v", err), true)
		return
	}
	m.sentFrames++
	m.addLogEntry(fmt.Sprintf("sent: %s",
		strings.TrimRight(poseframe.FormatEcho(m.pose), "\n")), false)
}

func (m *jogModel) addLogEntry(message string, isError bool) {
	entry := jogLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	}
	m.log = append(m.log, entry)

	// Keep only last N entries
	if len(m.log) > m.maxLogEntries {
		m.log = m.log[len(m.log)-m.maxLogEntries:]
	}
}

// jogGauge renders a bar for an angle on the joint's validation range.
func jogGauge(angle, min, max, width int) string {
	if max <= min {
		return strings.Repeat(" ", width)
	}
	pos := (angle - min) * (width - 1) / (max - min)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteByte('|')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func (m jogModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13")).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("ARMLINK - JOG"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf(
		"%s | %s framing | sent: %d | arrows: select/nudge, pgup/pgdn: ±10, e: edit, enter: send, c: center, q: quit",
		m.connInfo, m.sess.framing, m.sentFrames)))
	s.WriteString("\n\n")

	if m.connLost {
		s.WriteString(errorStyle.Render("✗ Connection lost"))
		s.WriteString("\n\n")
	}

	// Joint panel
	joints := strings.Builder{}
	for i := 0; i < poseframe.FieldCount; i++ {
		marker := "  "
		name := labelStyle.Render(fmt.Sprintf("%-12s", m.sess.jointNames[i]))
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			name = cursorStyle.Render(fmt.Sprintf("%-12s", m.sess.jointNames[i]))
		}

		value := valueStyle.Render(fmt.Sprintf("%4d", m.pose[i]))
		if i == m.cursor && m.editing {
			value = m.input.View()
		}

		gauge := headerStyle.Render(jogGauge(m.pose[i], m.sess.limits.Min[i], m.sess.limits.Max[i], 24))

		findings := m.sess.limits.Validate(m.pose)
		outOfRange := ""
		for _, f := range findings {
			if f.Joint == i {
				outOfRange = warningStyle.Render(" out of range")
			}
		}

		joints.WriteString(fmt.Sprintf("%s%s %s  %s%s\n", marker, name, value, gauge, outOfRange))
	}
	s.WriteString(boxStyle.Render(joints.String()))
	s.WriteString("\n\n")

	// Event log
	s.WriteString(labelStyle.Render("Recent Events:"))
	s.WriteString("\n")

	logHeight := m.height - poseframe.FieldCount - 10
	if logHeight < 5 {
		logHeight = 5
	}

	logContent := strings.Builder{}
	startIdx := len(m.log) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.log) == 0 {
		logContent.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.log); i++ {
			entry := m.log[i]
			timestamp := entry.timestamp.Format("15:04:05.000")
			if entry.isError {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					errorStyle.Render("✗ "+entry.message),
				))
			} else {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					valueStyle.Render("· "+entry.message),
				))
			}
		}
	}

	s.WriteString(boxStyle.Width(m.width - 4).Render(logContent.String()))

	return s.String()
}
