// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// logging defaults when no configuration file is supplied
var defaultLogging = logger.Configuration{
	Directory: ".",
	File:      "argdump.log",
	Size:      1048576,
	Count:     10,
	Console:   true,
	Levels: map[string]string{
		logger.DefaultTag: "error",
	},
}

// Configuration - the argdump configuration file contents
type Configuration struct {
	Logging logger.Configuration `gluamapper:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		Logging: defaultLogging,
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(configurationFileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(configurationFileName); err != nil {
		return nil, err
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	err = mapper.Map(L.Get(L.GetTop()).(*lua.LTable), options)
	if nil != err {
		return nil, err
	}

	return options, nil
}
