// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sixservo/armlink/pkg/poseframe"
)

// Config holds the optional YAML deployment configuration. Flags override
// file values; file values override defaults.
type Config struct {
	Port          string        `yaml:"port"`
	Baud          int           `yaml:"baud"`
	Framing       string        `yaml:"framing"`
	TokenCapacity int           `yaml:"token_capacity"`
	FrameTimeout  string        `yaml:"frame_timeout"`
	Joints        []JointConfig `yaml:"joints"`
}

// JointConfig overrides one joint's label and validation limits, in wire
// order.
type JointConfig struct {
	Name string `yaml:"name"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
}

// LoadConfig reads and parses a YAML config file. Unknown keys are
// rejected to catch typos.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %v", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config bytes.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config: %v", err)
	}
	if len(cfg.Joints) > poseframe.FieldCount {
		return nil, fmt.Errorf("config lists %d joints, protocol has %d fields",
			len(cfg.Joints), poseframe.FieldCount)
	}
	return &cfg, nil
}

// session holds the per-invocation protocol settings after merging
// defaults, config file, and flags.
type session struct {
	framing      poseframe.Framing
	tokenCap     int
	frameTimeout time.Duration
	limits       poseframe.Limits
	jointNames   [poseframe.FieldCount]string
}

// loadSession resolves the protocol settings for a command invocation.
// It also updates the shared portName/baudRate globals from the config
// file when the corresponding flags were not set explicitly.
func loadSession(cmd *cobra.Command) (*session, error) {
	s := &session{
		tokenCap:   poseframe.DefaultTokenCapacity,
		limits:     poseframe.DefaultLimits(),
		jointNames: poseframe.DefaultJointNames,
	}

	var cfg *Config
	if configPath != "" {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()

	// Connection settings: flag > config file > flag default.
	if cfg != nil {
		if cfg.Port != "" && !flags.Changed("port") {
			portName = cfg.Port
		}
		if cfg.Baud != 0 && !flags.Changed("baud") {
			baudRate = cfg.Baud
		}
	}

	// Framing variant.
	name := framingName
	if cfg != nil && cfg.Framing != "" && !flags.Changed("framing") {
		name = cfg.Framing
	}
	framing, ok := poseframe.ParseFraming(name)
	if !ok {
		return nil, fmt.Errorf("unknown framing variant %q (want delimited or fixed)", name)
	}
	s.framing = framing

	// Token capacity.
	if tokenCapacity > 0 {
		s.tokenCap = tokenCapacity
	} else if cfg != nil && cfg.TokenCapacity > 0 {
		s.tokenCap = cfg.TokenCapacity
	}

	// Frame timeout.
	timeoutStr := frameTimeoutFlag
	if cfg != nil && cfg.FrameTimeout != "" && !flags.Changed("frame-timeout") {
		timeoutStr = cfg.FrameTimeout
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid frame timeout %q: %v", timeoutStr, err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("frame timeout must not be negative: %s", timeout)
	}
	s.frameTimeout = timeout

	// Joint overrides.
	if cfg != nil {
		for i, j := range cfg.Joints {
			if j.Name != "" {
				s.jointNames[i] = j.Name
			}
			if j.Min != 0 || j.Max != 0 {
				s.limits.Min[i] = j.Min
				s.limits.Max[i] = j.Max
			}
		}
	}

	return s, nil
}

// newDecoder builds a decoder from the session settings.
func (s *session) newDecoder() *poseframe.Decoder {
	return poseframe.NewDecoderCapacity(s.framing, s.tokenCap)
}
