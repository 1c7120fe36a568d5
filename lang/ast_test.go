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

import "testing"

func TestBuildAtoms(t *testing.T) {
	env := NewGlobal()
	cases := []struct {
		source string
		want   Expr
	}{
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"3.5", Float(3.5)},
		{"#t", Lit{Kind: LitTrue}},
		{"#f", Lit{Kind: LitFalse}},
		{"nil", Lit{Kind: LitNil}},
		{"foo", Symbol{Name: "foo"}},
	}
	for _, c := range cases {
		got, err := Build(c.source, env)
		if err != nil {
			t.Fatalf("Build(%q) error: %v", c.source, err)
		}
		if got != c.want {
			t.Fatalf("Build(%q) = %#v, want %#v", c.source, got, c.want)
		}
	}
}

func TestBuildStringLiteral(t *testing.T) {
	env := NewGlobal()
	got, err := Build(`"hello world"`, env)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if got != Str("hello world") {
		t.Fatalf("Build(string) = %#v, want Str(hello world)", got)
	}
}

func TestBuildQuotedListLiteral(t *testing.T) {
	env := NewGlobal()
	got, err := Build("'(1 2 3)", env)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	lst, ok := got.(*List)
	if !ok || len(lst.Items) != 3 {
		t.Fatalf("Build('(1 2 3)) = %#v, want a 3-element List", got)
	}
}

func TestBuildLambdaRequiresParenthesisedForms(t *testing.T) {
	env := NewGlobal()
	cases := []string{
		"(lambda x (+ x 1))",   // params not parenthesised
		"(lambda (x) x)",       // body not parenthesised
		"(lambda (x))",         // missing body
	}
	for _, source := range cases {
		if _, err := Build(source, env); err == nil {
			t.Fatalf("Build(%q) succeeded, want SyntaxError", source)
		}
	}
}

func TestBuildDefineRejectsNonIdentifierName(t *testing.T) {
	env := NewGlobal()
	if _, err := Build(`(define "x" 1)`, env); err == nil {
		t.Fatal("Build(define with quoted name) succeeded, want SyntaxError")
	}
}

func TestBuildProcedureCallIsDeferred(t *testing.T) {
	env := NewGlobal()
	got, err := Build("(double 21)", env)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	call, ok := got.(*Call)
	if !ok {
		t.Fatalf("Build(procedure call) = %#v, want *Call", got)
	}
	sym, ok := call.Callee.(Symbol)
	if !ok || sym.Name != "double" {
		t.Fatalf("Call.Callee = %#v, want Symbol{double}", call.Callee)
	}
}
