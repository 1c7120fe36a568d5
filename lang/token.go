/*
Copyright (C) 2013, 2023-2026  Carl-Philip Hänsch, Pieter Kelchtermans

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

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits source into a flat, ordered sequence of top-level
// lexeme strings, per spec §4.1. source must begin with '(' and end with
// the matching ')'; callers (the REPL, the file driver) are responsible
// for wrapping raw text in an outer pair first.
func Tokenize(source string) (tokens []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
			} else {
				panic(r)
			}
		}
	}()

	if len(source) == 0 {
		return nil, NewEmptyExpression()
	}
	if source[0] != '(' {
		return nil, NewSyntaxError("source must begin with '('")
	}

	i := 1 // just inside the outer '('
	n := len(source)
	for i < n {
		ch := source[i]
		switch {
		case ch == '(':
			lexeme, next := consumeBalanced(source, i)
			tokens = append(tokens, lexeme)
			i = next
		case ch == '\'' && i+1 < n && source[i+1] == '(':
			lexeme, next := consumeBalanced(source, i+1)
			tokens = append(tokens, "'"+lexeme)
			i = next
		case ch == ';':
			for i < n && source[i] != '\n' {
				i++
			}
		case ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r':
			i++
		case ch == ')':
			// a ')' at n-1 is the outer wrap's matching ')' and ends the
			// scan; a ')' anywhere else at this level closes something
			// that was never opened.
			if i == n-1 {
				return tokens, nil
			}
			panic(NewUnmatchedClose())
		case ch == '"':
			start := i
			i++
			for i < n && source[i] != '"' {
				if source[i] == '\\' {
					i++
				}
				i++
			}
			if i >= n {
				panic(NewUnmatchedBracket())
			}
			i++ // consume closing quote
			tokens = append(tokens, normalizeAtom(source[start:i]))
		default:
			start := i
			for i < n && !isDelimiter(source[i]) {
				i++
			}
			tokens = append(tokens, normalizeAtom(source[start:i]))
		}
	}
	// the scan reached the end without meeting the outer wrap's ')'.
	panic(NewUnmatchedBracket())
}

func isDelimiter(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r' || ch == '(' || ch == ')'
}

// consumeBalanced consumes a parenthesised sub-expression starting at
// source[open] == '(', tracking a depth counter, and returns it verbatim
// (brackets included) plus the index just past its closing ')'.
func consumeBalanced(source string, open int) (string, int) {
	depth := 0
	i := open
	n := len(source)
	inString := false
	for i < n {
		ch := source[i]
		if inString {
			if ch == '\\' {
				i += 2
				continue
			}
			if ch == '"' {
				inString = false
			}
			i++
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return source[open : i+1], i + 1
			}
		}
		i++
	}
	panic(NewUnmatchedBracket())
}

// normalizeAtom applies NFC normalization to a bare lexeme (identifier,
// number, or quoted string) so two source files that spell the same
// identifier or string content with different Unicode normalization
// forms tokenise identically. See SPEC_FULL.md §2.4.
func normalizeAtom(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return strings.TrimSpace(norm.NFC.String(s))
}
