// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
port: /dev/ttyUSB0
baud: 115200
framing: fixed
token_capacity: 12
frame_timeout: 500ms
joints:
  - name: turret
    min: 10
    max: 170
  - name: lift
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Port != "/dev/ttyUSB0" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Baud != 115200 {
		t.Errorf("baud = %d", cfg.Baud)
	}
	if cfg.Framing != "fixed" {
		t.Errorf("framing = %q", cfg.Framing)
	}
	if cfg.TokenCapacity != 12 {
		t.Errorf("token_capacity = %d", cfg.TokenCapacity)
	}
	if cfg.FrameTimeout != "500ms" {
		t.Errorf("frame_timeout = %q", cfg.FrameTimeout)
	}
	if len(cfg.Joints) != 2 {
		t.Fatalf("joints = %d, want 2", len(cfg.Joints))
	}
	if cfg.Joints[0].Name != "turret" || cfg.Joints[0].Min != 10 || cfg.Joints[0].Max != 170 {
		t.Errorf("joint 0 = %+v", cfg.Joints[0])
	}
	if cfg.Joints[1].Name != "lift" || cfg.Joints[1].Min != 0 || cfg.Joints[1].Max != 0 {
		t.Errorf("joint 1 = %+v", cfg.Joints[1])
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Port != "" || cfg.Baud != 0 || len(cfg.Joints) != 0 {
		t.Errorf("empty config should yield zero values, got %+v", cfg)
	}
}

func TestParseConfig_TooManyJoints(t *testing.T) {
	var b strings.Builder
	b.WriteString("joints:\n")
	for i := 0; i < 8; i++ {
		b.WriteString("  - name: j\n")
	}

	if _, err := ParseConfig([]byte(b.String())); err == nil {
		t.Error("expected error for 8 joints")
	}
}

func TestParseConfig_UnknownKey(t *testing.T) {
	if _, err := ParseConfig([]byte("prot: /dev/ttyUSB0\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestParseConfig_BadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("port: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armlink.yaml")
	if err := os.WriteFile(path, []byte("port: /dev/ttyACM0\nbaud: 9600\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "/dev/ttyACM0" || cfg.Baud != 9600 {
		t.Errorf("config = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
