/*
Copyright (C) 2023-2026  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

// Package repl implements the interactive read-eval-print loop described
// in spec.md §6: prompt "nscm> ", one line per form, no multi-line
// continuation (unlike the teacher's scm/prompt.go, which keeps an
// oldline buffer for unmatched brackets — spec.md explicitly rules that
// out).
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/nscm-lang/nscm/diagnostics"
	"github.com/nscm-lang/nscm/lang"
)

const prompt = "nscm> "

// Session pairs a REPL loop with the shared global frame it evaluates
// against and an identity used for diagnostics — grounded on the
// teacher's use of uuid for session/request identification in main.go.
type Session struct {
	ID          uuid.UUID
	Env         *lang.Env
	HistoryFile string
	// Counters, if set, is incremented once per evaluated form and
	// backs the --stats summary; nil is fine, every method is a no-op.
	Counters *diagnostics.Counters
}

// NewSession creates a REPL session with a fresh global frame.
func NewSession(historyFile string) *Session {
	return &Session{
		ID:          uuid.New(),
		Env:         lang.NewGlobal(),
		HistoryFile: historyFile,
	}
}

// Run blocks reading lines from stdin until an empty line, the literal
// input "exit", or EOF/Ctrl-D. Each non-empty line is treated as one
// expression (spec.md §6): built, evaluated and printed, with panics
// recovered per line so a malformed form never kills the loop — mirroring
// the teacher's own anti-panic wrapper in scm/prompt.go.
func (s *Session) Run(out io.Writer) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       s.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" || line == "exit" {
			return nil
		}
		if line == "(primitives)" {
			fmt.Fprint(out, lang.FormatPrimitives())
			continue
		}
		s.evalLine(out, line)
	}
}

func (s *Session) evalLine(out io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "panic: %v\n", r)
		}
	}()
	s.Counters.FormEvaluated()
	expr, err := lang.Build(line, s.Env)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	v, err := lang.Eval(expr, s.Env)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if lang.Silent(expr) {
		return
	}
	fmt.Fprintln(out, lang.Format(v))
}
