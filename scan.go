// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optionparser

import (
	"os"
	"strings"
)

// token prefixes and the value separator
const (
	shortPrefix = "-"
	longPrefix  = "--"
	separator   = "="
)

// Parse - scan the process argument vector
//
// the vector is passed through verbatim with no special-casing of
// position 0, so the program name comes back as the first non-option
// argument
func (p *Parser) Parse() []string {
	return p.ParseFrom(os.Args)
}

// ParseFrom - scan an argument list, recording recognised options,
// and return the non-option arguments in their original order
//
// unrecognised option-like tokens are dropped without error
func (p *Parser) ParseFrom(tokens []string) []string {

	arguments := make([]string, 0, len(tokens))

loop:
	for _, item := range tokens {

		switch {

		case strings.HasPrefix(item, longPrefix):
			s := strings.SplitN(item, separator, 2)
			name, ok := p.longFormToName[s[0]]
			if !ok {
				continue loop // unknown long option
			}
			v := p.nameToOptionValue[name]
			v.isEnabled = true
			if 2 == len(s) {
				v.values = append(v.values, s[1])
			}

		case strings.HasPrefix(item, shortPrefix) && len(item) > 1:
			// fixed split: the prefix plus exactly one flag character
			name, ok := p.shortFormToName[item[:2]]
			if !ok {
				continue loop // unknown short option
			}
			v := p.nameToOptionValue[name]
			v.isEnabled = true
			v.values = append(v.values, item[2:])

		case strings.HasPrefix(item, shortPrefix):
			name, ok := p.shortFormToName[item]
			if !ok {
				continue loop
			}
			p.nameToOptionValue[name].isEnabled = true

		default:
			arguments = append(arguments, item)
		}
	}

	return arguments
}
