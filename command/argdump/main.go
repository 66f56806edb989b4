// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/optionparser"
	"github.com/bitmark-inc/optionparser/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// the options argdump itself understands
var registrations = []struct {
	short string
	long  string
	help  string
	name  string
}{
	{"-h", "--help", "show this message", "help"},
	{"-V", "--version", "show the version", "version"},
	{"-v", "--verbose", "log each recognised option", "verbose"},
	{"-c", "--config-file", "logging configuration file\n(Lua, see argdump.conf)", "config-file"},
	{"-o", "--output", "write the JSON document to a file\ninstead of standard output", "output"},
}

// document printed after the scan
type scanResult struct {
	Program   string              `json:"program"`
	Options   map[string][]string `json:"options"`
	Arguments []string            `json:"arguments"`
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := filepath.Base(os.Args[0])

	parser := optionparser.New(
		fmt.Sprintf("usage: %s [options] arguments", program),
		"unregistered options are dropped without error",
	)

	for _, r := range registrations {
		err := parser.RegisterOption(r.short, r.long, r.help, r.name)
		if nil != err {
			exitwithstatus.Message("%s: register option error: %s", program, err)
		}
	}

	arguments := parser.ParseFrom(os.Args[1:])

	if parser.IsEnabled("help") {
		exitwithstatus.Message("%s", parser.HelpText())
	}

	if parser.IsEnabled("version") {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	logging := defaultLogging
	if parser.IsEnabled("config-file") {
		configurationFile, err := configurationFileName(parser.GetOptionValues("config-file"))
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		theConfiguration, err := getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
		logging = theConfiguration.Logging
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("argdump")
	log.Infof("version: %s", version)

	options := make(map[string][]string)
	for _, r := range registrations {
		if !parser.IsEnabled(r.name) {
			continue
		}
		options[r.name] = parser.Get(r.name)
		if parser.IsEnabled("verbose") {
			log.Infof("option: %s  values: %v", r.name, parser.Get(r.name))
		}
	}
	log.Infof("arguments: %v", arguments)

	result := scanResult{
		Program:   program,
		Options:   options,
		Arguments: arguments,
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		exitwithstatus.Message("%s: incorrect json marshal: %s", program, err)
	}

	out := os.Stdout
	if parser.IsEnabled("output") {
		fileName, err := outputFileName(parser.GetOptionValues("output"))
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		f, err := os.Create(fileName)
		if nil != err {
			exitwithstatus.Message("%s: cannot create: %q  error: %s", program, fileName, err)
		}
		defer f.Close()
		out = f
	}

	fmt.Fprintf(out, "%s\n", b)
}

// configurationFileName - the single config-file value
//
// a bare "--config-file" enables the option without appending a
// value, so an enabled option can still have an empty value list
func configurationFileName(values []string) (string, error) {
	switch {
	case 0 == len(values):
		return "", fault.InvalidError("config-file requires a value")
	case 1 != len(values):
		return "", fault.InvalidError(fmt.Sprintf("exactly one config-file value is required, %d were detected", len(values)))
	case "" == values[0]:
		return "", fault.InvalidError("config-file value cannot be empty")
	}
	return values[0], nil
}

// outputFileName - the file to write the JSON document to
//
// the last value wins when the option is repeated
func outputFileName(values []string) (string, error) {
	if 0 == len(values) {
		return "", fault.InvalidError("output requires a file name")
	}
	fileName := values[len(values)-1]
	if "" == fileName {
		return "", fault.InvalidError("output file name cannot be empty")
	}
	return fileName, nil
}
