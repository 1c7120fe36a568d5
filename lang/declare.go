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
	"fmt"
	"strings"
)

// Declaration documents one primitive for --docs generation and the REPL
// (primitives) form. A reduced form of the teacher's scm.Declaration
// (scm/declare.go), which additionally tracks full parameter names and
// return types this interpreter's fixed primitive set doesn't need.
type Declaration struct {
	Tag         PrimTag
	MinArity    int
	MaxArity    int // -1 means unbounded
	Description string
}

// Declarations is the fixed documentation table for the 26 primitives in
// spec §3, in the same order they're listed there.
var Declarations = []Declaration{
	{PrimIf, 3, 3, "evaluate condition, then return the then-branch if truthy, else the else-branch"},
	{PrimDefine, 2, 2, "evaluate the expression and bind name to its value in the current frame"},
	{PrimSet, 2, 2, "mutate an existing binding; fails if name is unbound"},
	{PrimLambda, 2, 2, "construct a closure over the current environment"},
	{PrimAdd, 0, -1, "sum all arguments, promoting to float if any operand is a float"},
	{PrimSub, 2, 2, "subtract the second argument from the first"},
	{PrimMul, 0, -1, "multiply all arguments, promoting to float if any operand is a float"},
	{PrimDiv, 2, 2, "divide the first argument by the second; truncates for two integers"},
	{PrimMod, 2, 2, "remainder of integer division"},
	{PrimGt, 2, 2, "numeric greater-than"},
	{PrimLt, 2, 2, "numeric less-than"},
	{PrimGe, 2, 2, "numeric greater-than-or-equal"},
	{PrimLe, 2, 2, "numeric less-than-or-equal"},
	{PrimNumberP, 1, 1, "true if the argument is an Int or Float"},
	{PrimSymbolP, 1, 1, "true if the argument is an unresolved Symbol"},
	{PrimProcP, 1, 1, "true if the argument is a closure"},
	{PrimListP, 1, 1, "true if the argument is a List"},
	{PrimBoolP, 1, 1, "true if the argument is #t or #f"},
	{PrimStringP, 1, 1, "true if the argument is a quoted string literal"},
	{PrimNullP, 1, 1, "true if the argument is the empty list or nil"},
	{PrimCar, 1, 1, "first element of a list, or nil if empty"},
	{PrimCdr, 1, 1, "all but the first element of a list, or nil if length < 2"},
	{PrimCons, 2, 2, "prepend an element onto a list"},
	{PrimAppend, 1, -1, "concatenate lists"},
	{PrimMap, 2, 2, "apply a procedure to every element, collecting results"},
	{PrimFilter, 2, 2, "keep elements for which a predicate returns #t"},
}

// WriteDocumentation renders Declarations as Markdown, a reduced form of
// the teacher's scm.WriteDocumentation (scm/declare.go).
func WriteDocumentation() string {
	var b strings.Builder
	b.WriteString("# nscm primitives\n\n")
	for _, d := range Declarations {
		arity := fmt.Sprintf("%d", d.MinArity)
		if d.MaxArity < 0 {
			arity = fmt.Sprintf("%d+", d.MinArity)
		} else if d.MaxArity != d.MinArity {
			arity = fmt.Sprintf("%d-%d", d.MinArity, d.MaxArity)
		}
		fmt.Fprintf(&b, "## `%s` (arity %s)\n\n%s\n\n", d.Tag, arity, d.Description)
	}
	return b.String()
}

// FormatPrimitives renders Declarations the way the REPL's (primitives)
// introspection form prints to stdout — one line per entry, no Markdown.
func FormatPrimitives() string {
	var b strings.Builder
	for _, d := range Declarations {
		fmt.Fprintf(&b, "%-12s %s\n", d.Tag, d.Description)
	}
	return b.String()
}
