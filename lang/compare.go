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

// evalCompare implements > < >= <= from spec §4.4: exactly 2 numeric
// arguments, int/float promoted the same way evalArith does, result is
// #t or #f.
func evalCompare(tag PrimTag, args []Expr, env *Env) (Expr, error) {
	if len(args) != 2 {
		return nil, NewArityMismatch("%s requires exactly 2 arguments, got %d", tag, len(args))
	}
	a, err := eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, err := eval(args[1], env)
	if err != nil {
		return nil, err
	}

	var cmp bool
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			cmp = compareOrdered(tag, ai, bi)
			return boolLit(cmp), nil
		}
	}
	af, aOk := toFloat(a)
	bf, bOk := toFloat(b)
	if !aOk || !bOk {
		return nil, NewTypeError("%s: operands must be numbers", tag)
	}
	cmp = compareOrdered(tag, af, bf)
	return boolLit(cmp), nil
}

func compareOrdered[T Int | Float](tag PrimTag, a, b T) bool {
	switch tag {
	case PrimGt:
		return a > b
	case PrimLt:
		return a < b
	case PrimGe:
		return a >= b
	case PrimLe:
		return a <= b
	default:
		return false
	}
}

func boolLit(b bool) Lit {
	if b {
		return Lit{Kind: LitTrue}
	}
	return Lit{Kind: LitFalse}
}
