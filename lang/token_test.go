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

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []string
	}{
		{"simple call", "(+ 1 2 3)", []string{"+", "1", "2", "3"}},
		{"nested form", "(+ 1 (* 2 3))", []string{"+", "1", "(* 2 3)"}},
		{"quoted list", "(car '(1 2 3))", []string{"car", "'(1 2 3)"}},
		{"string literal with space", `(print "hello world")`, []string{"print", `"hello world"`}},
		{"comment stripped", "(+ 1 2 ; trailing comment\n)", []string{"+", "1", "2"}},
		{"whitespace variety", "(+\n1\t2)", []string{"+", "1", "2"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.source)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", c.source, err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Tokenize(%q) = %#v, want %#v", c.source, got, c.want)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		kind   Kind
	}{
		{"empty", "", KindSyntaxError},
		{"missing outer paren", "1 2 3", KindSyntaxError},
		{"unmatched open", "(+ 1 (* 2 3)", KindSyntaxError},
		{"unmatched close", "(+ 1 2))", KindSyntaxError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Tokenize(c.source)
			if err == nil {
				t.Fatalf("Tokenize(%q) = nil error, want %s", c.source, c.kind)
			}
			e, ok := err.(*Error)
			if !ok || e.Kind != c.kind {
				t.Fatalf("Tokenize(%q) error = %v, want kind %s", c.source, err, c.kind)
			}
		})
	}
}
