// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/optionparser/fault"
)

func TestOutputFileName(t *testing.T) {
	fileName, err := outputFileName([]string{"a.json", "b.json"})
	assert.NoError(t, err, "repeated values")
	assert.Equal(t, "b.json", fileName, "last value must win")

	// bare "--output" enables the option with no values at all
	_, err = outputFileName([]string{})
	assert.Error(t, err, "missing file name accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")

	// bare "-o" appends one empty value
	_, err = outputFileName([]string{""})
	assert.Error(t, err, "empty file name accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")
}

func TestConfigurationFileName(t *testing.T) {
	fileName, err := configurationFileName([]string{"argdump.conf"})
	assert.NoError(t, err, "single value")
	assert.Equal(t, "argdump.conf", fileName, "wrong file name")

	// bare "--config-file" enables the option with no values at all
	_, err = configurationFileName([]string{})
	assert.Error(t, err, "missing value accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")
	assert.Contains(t, err.Error(), "requires a value", "wrong message")

	// "--config-file=" appends one empty value
	_, err = configurationFileName([]string{""})
	assert.Error(t, err, "empty value accepted")
	assert.Contains(t, err.Error(), "cannot be empty", "wrong message")

	_, err = configurationFileName([]string{"one.conf", "two.conf"})
	assert.Error(t, err, "repeated values accepted")
	assert.Contains(t, err.Error(), "2 were detected", "wrong message")
}
