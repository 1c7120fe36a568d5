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

// Package lang implements the tree-walking interpreter core: the
// tokeniser, the AST builder, the lexically-scoped environment and the
// evaluator, plus the primitive operator set.
package lang

// Expr is the tagged union of every expression node the tokeniser, AST
// builder and evaluator pass around. Each variant below is a distinct Go
// type implementing the unexported marker method so the set is closed to
// this package (mirrors a Scmer-style sum type without resorting to
// interface{}: see DESIGN.md for why this differs from the teacher's
// unsafe-pointer-packed Scmer).
type Expr interface {
	isExpr()
}

// Int is a literal 64-bit signed integer.
type Int int64

// Float is a literal IEEE double.
type Float float64

// Str is a quoted string literal value. Identifiers are plain Go strings
// (SPEC_FULL.md §5, point 3), with one exception: buildPrim stores the
// name of a define or set! form as a Str in the Prim's first argument,
// which evalDefine and evalSet read back as the name to bind.
type Str string

// LitKind enumerates the three atomic literals that aren't numbers or
// strings.
type LitKind uint8

const (
	LitTrue LitKind = iota
	LitFalse
	LitNil
)

// Lit is one of #t, #f or nil.
type Lit struct {
	Kind LitKind
}

// List is an ordered sequence of expressions: a quoted list literal, or
// the parameter list a Proc was built with before its params were lowered
// to plain names.
type List struct {
	Items []Expr
}

// Symbol is an identifier reference whose resolution is always deferred
// to evaluation time, walking the live environment chain (SPEC_FULL.md
// §5, point 1). It never carries a build-time-resolved payload.
type Symbol struct {
	Name string
}

// PrimTag names one of the 26 enumerated primitive keywords from spec
// §3/§4.2. It is not used for procedure calls — see Call.
type PrimTag string

const (
	PrimIf       PrimTag = "if"
	PrimDefine   PrimTag = "define"
	PrimSet      PrimTag = "set!"
	PrimLambda   PrimTag = "lambda"
	PrimAdd      PrimTag = "+"
	PrimSub      PrimTag = "-"
	PrimMul      PrimTag = "*"
	PrimDiv      PrimTag = "/"
	PrimMod      PrimTag = "mod"
	PrimGt       PrimTag = ">"
	PrimLt       PrimTag = "<"
	PrimGe       PrimTag = ">="
	PrimLe       PrimTag = "<="
	PrimNumberP  PrimTag = "number?"
	PrimSymbolP  PrimTag = "symbol?"
	PrimProcP    PrimTag = "procedure?"
	PrimListP    PrimTag = "list?"
	PrimBoolP    PrimTag = "boolean?"
	PrimStringP  PrimTag = "string?"
	PrimNullP    PrimTag = "null?"
	PrimCar      PrimTag = "car"
	PrimCdr      PrimTag = "cdr"
	PrimCons     PrimTag = "cons"
	PrimAppend   PrimTag = "append"
	PrimMap      PrimTag = "map"
	PrimFilter   PrimTag = "filter"
)

// Prim is an unreduced application of one of the 26 primitive forms.
type Prim struct {
	Tag  PrimTag
	Args []Expr
}

// Proc is a closure: a parameter list, a body and the environment
// captured when the lambda form was evaluated.
type Proc struct {
	Params []string
	Body   Expr
	Env    *Env
}

// Call is an unreduced application of a computed (non-primitive) value to
// arguments — added to the data model in SPEC_FULL.md §5, point 2, to
// carry the "single, uniform procedure application" spec §9 asks for
// once the body-is-Symbol recursive-call hack is removed. It is not a
// 27th primitive tag: PrimTag has exactly the 26 named members.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (Int) isExpr()    {}
func (Float) isExpr()  {}
func (Str) isExpr()    {}
func (Lit) isExpr()    {}
func (*List) isExpr()  {}
func (Symbol) isExpr() {}
func (*Prim) isExpr()  {}
func (*Proc) isExpr()  {}
func (*Call) isExpr()  {}

// Truthy implements the §4.4 "if" truthiness rule: #t, or any positive
// number. Everything else — #f, nil, zero, negatives — is falsey.
func Truthy(v Expr) bool {
	switch e := v.(type) {
	case Lit:
		return e.Kind == LitTrue
	case Int:
		return e > 0
	case Float:
		return e > 0.0
	default:
		return false
	}
}
