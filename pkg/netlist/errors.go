// Copyright Mint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package netlist

import "fmt"

// Kind classifies an Error, mirroring the error taxonomy of spec §7.
type Kind uint8

const (
	// IndexErr covers out-of-range wire/instance indexing or malformed
	// slices (step given, msb < lsb, missing stop, non-zero lsb where
	// disallowed).
	IndexErr Kind = iota
	// ValueErr covers anonymous children, out-of-range constants, and
	// vector-generator misuse.
	ValueErr
	// ConnectionErr covers binding mismatches: vector length mismatches,
	// and Const/Concat nets pinned without an explicit port-name template.
	ConnectionErr
	// ModelNotExistErr indicates a requested model builder isn't defined on
	// a container. Fatal at the top of elaboration; absorbed silently while
	// recursing into children (§4.G, §7).
	ModelNotExistErr
	// RegistrationErr covers registry name clashes: double registration, or
	// Get against a name registered under a different kind.
	RegistrationErr
	// TypeErr covers a connection operator applied to operand types it
	// doesn't support.
	TypeErr
)

func (k Kind) String() string {
	switch k {
	case IndexErr:
		return "IndexError"
	case ValueErr:
		return "ValueError"
	case ConnectionErr:
		return "ConnectionError"
	case ModelNotExistErr:
		return "ModelDoesNotExist"
	case RegistrationErr:
		return "RegistrationError"
	case TypeErr:
		return "TypeError"
	default:
		return "Error"
	}
}

// Error is the structured error type returned throughout this module,
// mirroring mint/min.py's MintError subclasses (MintIndexError,
// MintValueError, MintConnectionError, MintModelDoesNotExist) and
// mint/max.py's bare ValueError/KeyError for registration, collapsed into
// one tagged type the way pkg/sexp/error.go's SyntaxError carries a span and
// a message rather than a family of exception subclasses.
type Error struct {
	Kind Kind
	msg  string
}

// newError constructs an Error of the given kind with a formatted message.
func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// IsKind reports whether err is a *Error of the given kind. It checks err
// itself only; a wrapped *Error is not unwrapped.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}

	return e.Kind == kind
}
