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
	"golang.org/x/exp/constraints"
)

// combine runs the same binary operator over either two int64s or two
// float64s once evalArith has already settled which representation the
// pair needs — the one spot this package reaches for
// golang.org/x/exp/constraints, per SPEC_FULL.md §2.4.
func combine[T constraints.Integer | constraints.Float](a, b T, op func(T, T) T) T {
	return op(a, b)
}

// evalArith implements + - * / mod from spec §4.4: `+` and `*` fold over
// any arity (empty sum is Int(0), empty product is Int(1)); `-`, `/` and
// `mod` are arity 2 exact. All fold left to right, promoting to Float the
// moment any operand is a Float.
func evalArith(tag PrimTag, args []Expr, env *Env) (Expr, error) {
	switch tag {
	case PrimAdd:
		if len(args) == 0 {
			return Int(0), nil
		}
	case PrimMul:
		if len(args) == 0 {
			return Int(1), nil
		}
	default:
		if len(args) != 2 {
			return nil, NewArityMismatch("%s requires exactly 2 arguments, got %d", tag, len(args))
		}
	}

	vals := make([]Expr, len(args))
	for i, a := range args {
		v, err := eval(a, env)
		if err != nil {
			return nil, err
		}
		if !isNumber(v) {
			return nil, NewTypeError("%s: arguments must be numbers", tag)
		}
		vals[i] = v
	}

	acc := vals[0]
	for _, v := range vals[1:] {
		next, err := applyArith(tag, acc, v)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

func applyArith(tag PrimTag, a, b Expr) (Expr, error) {
	ai, aIsInt := a.(Int)
	bi, bIsInt := b.(Int)
	if aIsInt && bIsInt {
		if tag == PrimDiv || tag == PrimMod {
			if bi == 0 {
				return nil, NewDivisionByZero("division by zero")
			}
		}
		switch tag {
		case PrimAdd:
			return combine(ai, bi, func(x, y Int) Int { return x + y }), nil
		case PrimSub:
			return combine(ai, bi, func(x, y Int) Int { return x - y }), nil
		case PrimMul:
			return combine(ai, bi, func(x, y Int) Int { return x * y }), nil
		case PrimDiv:
			return combine(ai, bi, func(x, y Int) Int { return x / y }), nil
		case PrimMod:
			return combine(ai, bi, func(x, y Int) Int { return x % y }), nil
		}
	}

	// mod is integer-only per spec §4.4: it never reaches here with two
	// Int operands (that's handled above), so any arrival here means at
	// least one operand is a Float, which mod rejects outright instead
	// of promoting.
	if tag == PrimMod {
		return nil, NewTypeError("mod: operands must be integers")
	}

	af, aOk := toFloat(a)
	bf, bOk := toFloat(b)
	if !aOk || !bOk {
		return nil, NewTypeError("%s: operands must be numbers", tag)
	}
	if tag == PrimDiv && bf == 0 {
		return nil, NewDivisionByZero("division by zero")
	}
	switch tag {
	case PrimAdd:
		return combine(af, bf, func(x, y Float) Float { return x + y }), nil
	case PrimSub:
		return combine(af, bf, func(x, y Float) Float { return x - y }), nil
	case PrimMul:
		return combine(af, bf, func(x, y Float) Float { return x * y }), nil
	case PrimDiv:
		return combine(af, bf, func(x, y Float) Float { return x / y }), nil
	}
	return nil, NewTypeError("unknown arithmetic primitive %q", tag)
}

func toFloat(e Expr) (Float, bool) {
	switch v := e.(type) {
	case Int:
		return Float(v), true
	case Float:
		return v, true
	default:
		return 0, false
	}
}

func isNumber(e Expr) bool {
	switch e.(type) {
	case Int, Float:
		return true
	default:
		return false
	}
}
