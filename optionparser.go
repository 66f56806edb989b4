// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optionparser

import (
	"fmt"

	"github.com/bitmark-inc/optionparser/fault"
)

// Option - one registered option
//
// forms include their prefixes, e.g. "-v" and "--verbose"; an empty
// form string means that form is absent
type Option struct {
	ShortForm string
	LongForm  string
	HelpText  string
	Name      string
}

// per-name scan state
type optionValue struct {
	isEnabled bool
	values    []string
}

// Parser - option registry, scanner and help formatter
//
// ignores invalid arguments passed
type Parser struct {
	header            string
	footer            string
	nameToOption      map[string]Option
	nameToOptionValue map[string]*optionValue
	shortFormToName   map[string]string
	longFormToName    map[string]string
	emptyOptionList   []string
}

// New - create an empty parser
//
// header and footer are fixed for the life of the parser and only
// used by HelpText
func New(header string, footer string) *Parser {
	return &Parser{
		header:            header,
		footer:            footer,
		nameToOption:      make(map[string]Option),
		nameToOptionValue: make(map[string]*optionValue),
		shortFormToName:   make(map[string]string),
		longFormToName:    make(map[string]string),
		emptyOptionList:   make([]string, 0),
	}
}

// RegisterOption - add one named option
//
// at least one of the short and long forms is required; the option is
// queried by name, not by form
//
// the returned errors indicate defects in the calling program's setup
// code: registration is aborted with no partial bindings recorded
func (p *Parser) RegisterOption(shortForm string, longForm string, helpText string, name string) error {

	if _, ok := p.nameToOption[name]; ok {
		return fault.ExistsError(fmt.Sprintf("name: %q already registered as option", name))
	}

	if "" == shortForm && "" == longForm {
		return fault.InvalidError(fmt.Sprintf("both long form and short form cannot be empty for name: %q", name))
	}

	if "" != shortForm {
		if _, ok := p.shortFormToName[shortForm]; ok {
			return fault.ExistsError(fmt.Sprintf("short form of %q already defined", shortForm))
		}
	}

	if "" != longForm {
		if _, ok := p.longFormToName[longForm]; ok {
			return fault.ExistsError(fmt.Sprintf("long form of %q already defined", longForm))
		}
	}

	if "" != shortForm {
		p.shortFormToName[shortForm] = name
	}
	if "" != longForm {
		p.longFormToName[longForm] = name
	}

	p.nameToOption[name] = Option{
		ShortForm: shortForm,
		LongForm:  longForm,
		HelpText:  helpText,
		Name:      name,
	}

	p.nameToOptionValue[name] = &optionValue{
		isEnabled: false,
		values:    []string{},
	}

	return nil
}

// IsEnabled - check if the named option was recognised at least once
// during a scan
//
// an unknown name is simply not enabled
func (p *Parser) IsEnabled(name string) bool {
	v, ok := p.nameToOptionValue[name]
	if !ok {
		return false
	}
	return v.isEnabled
}

// GetOptionValues - all values collected for the named option, in the
// order they were scanned
//
// a disabled or unknown name yields a shared empty list; callers must
// not modify the returned list
func (p *Parser) GetOptionValues(name string) []string {
	if !p.IsEnabled(name) {
		return p.emptyOptionList
	}
	return p.nameToOptionValue[name].values
}

// Get - index-style access by name, identical to GetOptionValues
func (p *Parser) Get(name string) []string {
	return p.GetOptionValues(name)
}
