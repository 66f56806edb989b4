// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optionparser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/optionparser"
)

func TestHelpTextLayout(t *testing.T) {
	p := optionparser.New("usage: sample [options] arguments", "report bugs to the issue tracker")

	err := p.RegisterOption("-v", "--verbose", "more output", "verbose")
	assert.NoError(t, err, "registration")
	err = p.RegisterOption("", "--count", "set the count\nrepeat to accumulate", "count")
	assert.NoError(t, err, "registration")

	h := p.HelpText()

	assert.True(t, strings.HasPrefix(h, "usage: sample [options] arguments\n\n"),
		"header or its blank line missing")
	assert.True(t, strings.HasSuffix(h, "\nreport bugs to the issue tracker\n\n"),
		"footer or its blank lines missing")

	// exact rows; cross-option order is unspecified so each row is
	// checked independently
	assert.Contains(t, h, "-v  --verbose  more output\n", "verbose row")
	assert.Contains(t, h, "    --count    set the count\n\trepeat to accumulate\n", "count row")
}

func TestHelpTextNoOptions(t *testing.T) {
	p := optionparser.New("just a header", "just a footer")

	assert.Equal(t, "just a header\n\n\njust a footer\n\n", p.HelpText(),
		"wrong empty-table layout")
}

func TestHelpTextShortOnly(t *testing.T) {
	p := optionparser.New("header", "footer")

	err := p.RegisterOption("-q", "", "suppress output", "quiet")
	assert.NoError(t, err, "registration")

	assert.Contains(t, p.HelpText(), "-q    suppress output\n", "short-only row")
}
