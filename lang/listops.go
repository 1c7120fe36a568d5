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

// evalListOp implements car cdr cons append map filter from spec §4.4.
func evalListOp(tag PrimTag, args []Expr, env *Env) (Expr, error) {
	switch tag {
	case PrimCar:
		return evalCar(args, env)
	case PrimCdr:
		return evalCdr(args, env)
	case PrimCons:
		return evalCons(args, env)
	case PrimAppend:
		return evalAppend(args, env)
	case PrimMap:
		return evalMap(args, env)
	case PrimFilter:
		return evalFilter(args, env)
	default:
		return nil, NewTypeError("unknown list primitive %q", tag)
	}
}

func evalCar(args []Expr, env *Env) (Expr, error) {
	if len(args) != 1 {
		return nil, NewArityMismatch("car requires exactly 1 argument, got %d", len(args))
	}
	lst, err := evalAsList(args[0], env)
	if err != nil {
		return nil, err
	}
	if len(lst.Items) == 0 {
		return Lit{Kind: LitNil}, nil
	}
	return lst.Items[0], nil
}

func evalCdr(args []Expr, env *Env) (Expr, error) {
	if len(args) != 1 {
		return nil, NewArityMismatch("cdr requires exactly 1 argument, got %d", len(args))
	}
	lst, err := evalAsList(args[0], env)
	if err != nil {
		return nil, err
	}
	if len(lst.Items) < 2 {
		return Lit{Kind: LitNil}, nil
	}
	rest := make([]Expr, len(lst.Items)-1)
	copy(rest, lst.Items[1:])
	return &List{Items: rest}, nil
}

func evalCons(args []Expr, env *Env) (Expr, error) {
	if len(args) != 2 {
		return nil, NewArityMismatch("cons requires exactly 2 arguments, got %d", len(args))
	}
	head, err := eval(args[0], env)
	if err != nil {
		return nil, err
	}
	tail, err := evalAsList(args[1], env)
	if err != nil {
		return nil, err
	}
	items := make([]Expr, 0, len(tail.Items)+1)
	items = append(items, head)
	items = append(items, tail.Items...)
	return &List{Items: items}, nil
}

func evalAppend(args []Expr, env *Env) (Expr, error) {
	if len(args) < 1 {
		return nil, NewArityMismatch("append requires at least 1 argument, got %d", len(args))
	}
	var items []Expr
	for _, a := range args {
		lst, err := evalAsList(a, env)
		if err != nil {
			return nil, err
		}
		items = append(items, lst.Items...)
	}
	return &List{Items: items}, nil
}

func evalMap(args []Expr, env *Env) (Expr, error) {
	if len(args) != 2 {
		return nil, NewArityMismatch("map requires exactly 2 arguments, got %d", len(args))
	}
	proc, err := evalAsProc(args[0], env)
	if err != nil {
		return nil, err
	}
	lst, err := evalAsList(args[1], env)
	if err != nil {
		return nil, err
	}
	out := make([]Expr, len(lst.Items))
	for i, item := range lst.Items {
		v, err := applyProc(proc, []Expr{item})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &List{Items: out}, nil
}

func evalFilter(args []Expr, env *Env) (Expr, error) {
	if len(args) != 2 {
		return nil, NewArityMismatch("filter requires exactly 2 arguments, got %d", len(args))
	}
	proc, err := evalAsProc(args[0], env)
	if err != nil {
		return nil, err
	}
	lst, err := evalAsList(args[1], env)
	if err != nil {
		return nil, err
	}
	out := make([]Expr, 0, len(lst.Items))
	for _, item := range lst.Items {
		keep, err := applyProc(proc, []Expr{item})
		if err != nil {
			return nil, err
		}
		lit, ok := keep.(Lit)
		if !ok || (lit.Kind != LitTrue && lit.Kind != LitFalse) {
			return nil, NewTypeError("filter: predicate must return a boolean, got %v", Format(keep))
		}
		if lit.Kind == LitTrue {
			out = append(out, item)
		}
	}
	return &List{Items: out}, nil
}

func evalAsList(e Expr, env *Env) (*List, error) {
	v, err := eval(e, env)
	if err != nil {
		return nil, err
	}
	lst, ok := v.(*List)
	if !ok {
		return nil, NewTypeError("expected a list, got %v", Format(v))
	}
	return lst, nil
}

func evalAsProc(e Expr, env *Env) (*Proc, error) {
	v, err := eval(e, env)
	if err != nil {
		return nil, err
	}
	proc, ok := v.(*Proc)
	if !ok {
		return nil, NewTypeError("expected a procedure, got %v", Format(v))
	}
	return proc, nil
}
