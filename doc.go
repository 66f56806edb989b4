// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command-line option processing with named registration
//
// Options are registered up front with an access name, an optional
// short form, an optional long form and help text.  A scan then
// recognises:
//   --option              - enable the option
//   --option=value        - enable the option and append value
//   -o                    - enable the option and append an empty value
//   -ovalue               - enable the option and append value
//
// Note:
//   Short forms are exactly one character after the "-" prefix, so
//   "-abc" is the short form "-a" carrying the value "bc".
//   Only the first "=" in a long option splits; later ones stay in
//   the value.
//   Repeated options append to the value list, never overwrite.
//   Unregistered option-like tokens are dropped without error and do
//   not appear in the returned arguments.
//   All other tokens are returned as arguments in their original
//   relative order.
package optionparser
