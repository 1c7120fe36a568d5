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

package netrepl

import (
	"testing"

	"github.com/nscm-lang/nscm/lang"
)

func TestEvalOneReturnsPrintedResult(t *testing.T) {
	env := lang.NewGlobal()
	if got, want := evalOne(env, "(+ 1 2)"), "3"; got != want {
		t.Fatalf("evalOne(+ 1 2) = %q; want %q", got, want)
	}
}

func TestEvalOneIsSilentForDefine(t *testing.T) {
	env := lang.NewGlobal()
	if got := evalOne(env, "(define x 5)"); got != "" {
		t.Fatalf("evalOne(define x 5) = %q; want empty", got)
	}
	if got, want := evalOne(env, "x"), "5"; got != want {
		t.Fatalf("evalOne(x) after define = %q; want %q", got, want)
	}
}

func TestEvalOneReportsError(t *testing.T) {
	env := lang.NewGlobal()
	got := evalOne(env, "(unknown-thing)")
	if got == "" {
		t.Fatal("evalOne(unknown-thing) = \"\"; want an error message")
	}
}

func TestEvalOneRecoversPanics(t *testing.T) {
	env := lang.NewGlobal()
	// Malformed input that panics deep in the tokenizer/builder should
	// come back as a message, not crash the connection goroutine.
	got := evalOne(env, "(")
	if got == "" {
		t.Fatal("evalOne(\"(\") = \"\"; want an error message, not silence")
	}
}
