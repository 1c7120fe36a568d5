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
	"fmt"
	"io"
	"strings"

	"github.com/nscm-lang/nscm/diagnostics"
	"github.com/nscm-lang/nscm/lang"
)

// EvalFile implements spec.md §6's file-evaluation contract: the whole
// file content is wrapped in an outer "( ... )" pair, tokenised into
// top-level forms, and each form is built and evaluated in source order
// against a single shared frame — the file driver never bypasses the
// tokeniser's own comment handling by doing a naive line split
// (SPEC_FULL.md §3, "comment stripping inside file mode").
//
// A failing form prints a diagnostic to out and evaluation continues with
// the next form; EvalFile itself only returns an error for a malformed
// file that won't tokenise as a whole (e.g. unbalanced brackets).
//
// counters may be nil; when non-nil each top-level form increments its
// forms-evaluated count, backing the --stats summary.
func EvalFile(out io.Writer, name, content string, env *lang.Env, counters *diagnostics.Counters) error {
	wrapped := "(" + content + "\n)"
	forms, err := lang.Tokenize(wrapped)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for _, form := range forms {
		evalForm(out, env, form, counters)
	}
	return nil
}

func evalForm(out io.Writer, env *lang.Env, form string, counters *diagnostics.Counters) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "panic: %v\n", r)
		}
	}()
	counters.FormEvaluated()
	expr, err := lang.Build(form, env)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	v, err := lang.Eval(expr, env)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if lang.Silent(expr) {
		return
	}
	fmt.Fprintln(out, lang.Format(v))
}

// HasSCMSuffix reports whether path names a .scm file, per spec.md §6's
// "each must have the .scm suffix" rule.
func HasSCMSuffix(path string) bool {
	return strings.HasSuffix(path, ".scm")
}
