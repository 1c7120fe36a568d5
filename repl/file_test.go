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

	"github.com/nscm-lang/nscm/diagnostics"
	"github.com/nscm-lang/nscm/lang"
)

func TestEvalFileRunsFormsInOrderAgainstSharedEnv(t *testing.T) {
	env := lang.NewGlobal()
	var out strings.Builder
	content := "(define x 10)\n(+ x 5)\n(* x 2)"
	if err := EvalFile(&out, "test.scm", content, env, nil); err != nil {
		t.Fatalf("EvalFile: %v", err)
	}
	got := strings.TrimSpace(out.String())
	want := "15\n20"
	if got != want {
		t.Fatalf("EvalFile output = %q; want %q", got, want)
	}
}

func TestEvalFileSkipsCommentBeforeFirstForm(t *testing.T) {
	env := lang.NewGlobal()
	var out strings.Builder
	content := "; top of file comment\n(+ 1 1)"
	if err := EvalFile(&out, "test.scm", content, env, nil); err != nil {
		t.Fatalf("EvalFile: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "2" {
		t.Fatalf("EvalFile output = %q; want %q", got, "2")
	}
}

func TestEvalFileContinuesAfterAFailingForm(t *testing.T) {
	env := lang.NewGlobal()
	var out strings.Builder
	content := "(car 1 2)\n(+ 1 1)"
	if err := EvalFile(&out, "test.scm", content, env, nil); err != nil {
		t.Fatalf("EvalFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[1] != "2" {
		t.Fatalf("EvalFile output = %q; want it to still evaluate the form after the error", out.String())
	}
}

func TestEvalFileCountsForms(t *testing.T) {
	env := lang.NewGlobal()
	var out strings.Builder
	counters := &diagnostics.Counters{}
	content := "(define x 1)\n(+ x 1)\n(+ x 2)"
	if err := EvalFile(&out, "test.scm", content, env, counters); err != nil {
		t.Fatalf("EvalFile: %v", err)
	}
	report := counters.Report()
	if !strings.Contains(report, "forms evaluated : 3") {
		t.Fatalf("Report() = %q; want it to report 3 forms evaluated", report)
	}
}

func TestHasSCMSuffix(t *testing.T) {
	cases := map[string]bool{
		"foo.scm":     true,
		"foo.txt":     false,
		"dir/foo.scm": true,
		"foo":         false,
	}
	for path, want := range cases {
		if got := HasSCMSuffix(path); got != want {
			t.Errorf("HasSCMSuffix(%q) = %v; want %v", path, got, want)
		}
	}
}
