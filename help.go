// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optionparser

import (
	"fmt"
	"strings"
)

// HelpText - format the registered options between header and footer
//
// one row per registered option with the short and long forms in
// aligned columns; embedded newlines in help text continue on a
// tab-indented line under the same row
//
// rows follow map iteration order so callers must not depend on a
// particular ordering across options
func (p *Parser) HelpText() string {

	shortWidth := 0
	longWidth := 0
	for _, opt := range p.nameToOption {
		if len(opt.ShortForm) > shortWidth {
			shortWidth = len(opt.ShortForm)
		}
		if len(opt.LongForm) > longWidth {
			longWidth = len(opt.LongForm)
		}
	}

	help := &strings.Builder{}
	help.WriteString(p.header)
	help.WriteString("\n\n")

	for _, opt := range p.nameToOption {
		text := strings.Replace(opt.HelpText, "\n", "\n\t", -1)
		fmt.Fprintf(help, "%-*s  %-*s  %s\n", shortWidth, opt.ShortForm, longWidth, opt.LongForm, text)
	}

	help.WriteString("\n")
	help.WriteString(p.footer)
	help.WriteString("\n\n")

	return help.String()
}
