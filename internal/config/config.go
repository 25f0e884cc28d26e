/*
 * chessframe - a chess position and move generation library in GO
 *
 * MIT License
 *
 * Copyright (c) 2024-2025 Zirconium419122
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/Zirconium419122/chessframe/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to
	// working directory)
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by
	// cmd line options or config file
	LogLevel = 5

	// TestLogLevel defines the test log level
	TestLogLevel = 5

	// Settings is the global configuration read in from file
	Settings Conf

	initialized = false
)

// Conf is the structure the configuration file is read into
type Conf struct {
	Log   LogConfiguration
	Perft PerftConfiguration
	Magic MagicConfiguration
}

// LogConfiguration holds the log levels from the config file
type LogConfiguration struct {
	LogLvl     string
	TestLogLvl string
}

// PerftConfiguration holds defaults for the perft command
type PerftConfiguration struct {
	Depth    int
	TtSizeMB int
}

// MagicConfiguration holds settings of the magic generator
type MagicConfiguration struct {
	Seed          uint64
	MaxIterations int
}

// Setup reads the configuration file and sets settings from this file
// or defaults
func Setup() {
	if initialized {
		return
	}

	// defaults
	Settings.Perft.Depth = 5
	Settings.Perft.TtSizeMB = 256
	Settings.Magic.Seed = 123456789
	Settings.Magic.MaxIterations = 1_000_000

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	initialized = true
}

// setupLogLvl applies the log levels from the configuration file
func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		LogLevel = logLevelFromString(Settings.Log.LogLvl, LogLevel)
	}
	if Settings.Log.TestLogLvl != "" {
		TestLogLevel = logLevelFromString(Settings.Log.TestLogLvl, TestLogLevel)
	}
}

func logLevelFromString(s string, fallback int) int {
	switch s {
	case "critical":
		return 0
	case "error":
		return 1
	case "warning":
		return 2
	case "notice":
		return 3
	case "info":
		return 4
	case "debug":
		return 5
	}
	return fallback
}
