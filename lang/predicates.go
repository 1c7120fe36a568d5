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

// evalPredicate implements number? symbol? procedure? list? boolean?
// string? null? from spec §4.4: exactly one argument, result is #t/#f.
func evalPredicate(tag PrimTag, args []Expr, env *Env) (Expr, error) {
	if len(args) != 1 {
		return nil, NewArityMismatch("%s requires exactly 1 argument, got %d", tag, len(args))
	}
	v, err := eval(args[0], env)
	if err != nil {
		return nil, err
	}

	switch tag {
	case PrimNumberP:
		return boolLit(isNumber(v)), nil
	case PrimSymbolP:
		_, ok := v.(Symbol)
		return boolLit(ok), nil
	case PrimProcP:
		_, ok := v.(*Proc)
		return boolLit(ok), nil
	case PrimListP:
		_, ok := v.(*List)
		return boolLit(ok), nil
	case PrimBoolP:
		lit, ok := v.(Lit)
		return boolLit(ok && (lit.Kind == LitTrue || lit.Kind == LitFalse)), nil
	case PrimStringP:
		_, ok := v.(Str)
		return boolLit(ok), nil
	case PrimNullP:
		return boolLit(isNull(v)), nil
	default:
		return nil, NewTypeError("unknown predicate %q", tag)
	}
}

// isNull reports whether v is the empty list or the nil literal — spec
// §4.4 treats both as "null" for null?.
func isNull(v Expr) bool {
	if lit, ok := v.(Lit); ok && lit.Kind == LitNil {
		return true
	}
	if lst, ok := v.(*List); ok && len(lst.Items) == 0 {
		return true
	}
	return false
}
