// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides typed error classes so registration failures can be
// classified without having to resort to partial string matches
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string  { return string(e) }
func (e InvalidError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool  { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }
