/*
Copyright (C) 2023-2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package lang

import "fmt"

// Kind classifies why the tokeniser, AST builder or evaluator gave up.
type Kind string

const (
	KindSyntaxError        Kind = "SyntaxError"
	KindArityMismatch      Kind = "ArityMismatch"
	KindTypeError          Kind = "TypeError"
	KindDivisionByZero     Kind = "DivisionByZero"
	KindUnboundIdentifier  Kind = "UnboundIdentifier"
	KindUnboundProcedure   Kind = "UnboundProcedure"
	KindMalformedParameter Kind = "MalformedParameter"
)

// Error is the single failure type produced anywhere in package lang.
// Internal helpers may panic with an *Error; recover() at the
// Tokenize/Build/Eval entry points turns such a panic into an ordinary
// returned error. A panic with any other value is re-raised there and
// propagates to the caller.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func NewSyntaxError(format string, args ...interface{}) *Error {
	return newError(KindSyntaxError, format, args...)
}

func NewArityMismatch(format string, args ...interface{}) *Error {
	return newError(KindArityMismatch, format, args...)
}

func NewTypeError(format string, args ...interface{}) *Error {
	return newError(KindTypeError, format, args...)
}

func NewDivisionByZero(format string, args ...interface{}) *Error {
	return newError(KindDivisionByZero, format, args...)
}

func NewUnboundIdentifier(name string) *Error {
	return newError(KindUnboundIdentifier, "unbound identifier: %s", name)
}

func NewUnboundProcedure(name string) *Error {
	return newError(KindUnboundProcedure, "unbound procedure: %s", name)
}

func NewMalformedParameter(format string, args ...interface{}) *Error {
	return newError(KindMalformedParameter, format, args...)
}

// Named syntax error subtypes from spec §4.1, kept distinct in the message
// so callers can grep on them even though they share KindSyntaxError.
func NewEmptyExpression() *Error {
	return NewSyntaxError("EmptyExpression: source has no top-level form")
}

func NewUnmatchedBracket() *Error {
	return NewSyntaxError("UnmatchedBracket: reached end of input inside an open form")
}

func NewUnmatchedClose() *Error {
	return NewSyntaxError("UnmatchedClose: unexpected ')' with nothing open")
}
