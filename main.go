// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Sixservo Robotics
//
// Armlink - 6DOF arm pose link tool
//
// Host-side tooling for the seven-field pose frame protocol spoken by
// serial-attached arm controllers.

package main

import (
	"os"

	"github.com/sixservo/armlink/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
