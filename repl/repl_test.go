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

package repl

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/nscm-lang/nscm/diagnostics"
	"github.com/nscm-lang/nscm/lang"
)

func TestNewSessionHasFreshGlobalEnvAndID(t *testing.T) {
	s := NewSession("")
	if s.Env == nil {
		t.Fatal("NewSession: Env is nil")
	}
	if s.ID == uuid.Nil {
		t.Fatal("NewSession: ID is zero")
	}
}

func TestEvalLinePrintsValueAndSuppressesDefine(t *testing.T) {
	s := NewSession("")
	var out strings.Builder

	s.evalLine(&out, "(define x 41)")
	if out.String() != "" {
		t.Fatalf("evalLine(define) wrote %q; want nothing", out.String())
	}

	s.evalLine(&out, "(+ x 1)")
	if got := strings.TrimSpace(out.String()); got != "42" {
		t.Fatalf("evalLine(+ x 1) = %q; want %q", got, "42")
	}
}

func TestEvalLineCountsForms(t *testing.T) {
	s := NewSession("")
	s.Counters = &diagnostics.Counters{}
	var out strings.Builder
	s.evalLine(&out, "(+ 1 1)")
	s.evalLine(&out, "(+ 2 2)")
	report := s.Counters.Report()
	if !strings.Contains(report, "forms evaluated : 2") {
		t.Fatalf("Report() = %q; want it to report 2 forms evaluated", report)
	}
}

func TestEvalLineRecoversPanic(t *testing.T) {
	s := NewSession("")
	var out strings.Builder
	s.evalLine(&out, "(")
	if out.String() == "" {
		t.Fatal("evalLine(\"(\") produced no diagnostic output")
	}
}

func TestSessionEnvIsIndependentPerInstance(t *testing.T) {
	a := NewSession("")
	b := NewSession("")
	a.Env.Bind("only-in-a", lang.Int(1))
	if _, ok := b.Env.Lookup("only-in-a"); ok {
		t.Fatal("sessions must not share a global environment")
	}
}
