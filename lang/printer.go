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
	"strconv"
	"strings"
)

// Format renders v the way the REPL and file driver print results, per
// spec §6: numbers as plain text, strings without their quotes,
// #t/#f/() for the three literals, a fixed placeholder for procedures,
// and lists space-separated inside parens.
func Format(v Expr) string {
	switch e := v.(type) {
	case Int:
		return strconv.FormatInt(int64(e), 10)
	case Float:
		return strconv.FormatFloat(float64(e), 'g', -1, 64)
	case Str:
		return string(e)
	case Lit:
		switch e.Kind {
		case LitTrue:
			return "#t"
		case LitFalse:
			return "#f"
		default:
			return "()"
		}
	case *List:
		parts := make([]string, len(e.Items))
		for i, item := range e.Items {
			parts[i] = Format(item)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *Proc:
		return "<procedure>"
	case Symbol:
		return e.Name
	default:
		return "<unknown>"
	}
}

// Silent reports whether a top-level form's own printed result should be
// suppressed — define and set! produce no REPL/file-driver output even
// though Eval still returns a Lit(nil) for them (spec §6).
func Silent(expr Expr) bool {
	p, ok := expr.(*Prim)
	if !ok {
		return false
	}
	return p.Tag == PrimDefine || p.Tag == PrimSet
}
