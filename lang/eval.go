/*
Copyright (C) 2013, 2023-2026  Carl-Philip Hänsch, Pieter Kelchtermans

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

// Eval reduces expr to a value against env, per spec §4.4. It is the one
// place every control form (if/define/set!/lambda), every primitive and
// every procedure application funnels through — there is no separate
// "apply" entry point; applying a Proc is just Eval on its Body against a
// freshly Child()-ed frame (see evalCall).
func Eval(expr Expr, env *Env) (result Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				result = nil
			} else {
				panic(r)
			}
		}
	}()
	return eval(expr, env)
}

func eval(expr Expr, env *Env) (Expr, error) {
	switch e := expr.(type) {
	case Int, Float, Str, Lit, *Proc:
		return e, nil
	case *List:
		return e, nil
	case Symbol:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, NewUnboundIdentifier(e.Name)
		}
		return v, nil
	case *Prim:
		return evalPrim(e, env)
	case *Call:
		return evalCall(e, env)
	default:
		return nil, NewTypeError("cannot evaluate expression of type %T", expr)
	}
}

func evalCall(c *Call, env *Env) (Expr, error) {
	var callee Expr
	if sym, ok := c.Callee.(Symbol); ok {
		v, ok := env.Lookup(sym.Name)
		if !ok {
			return nil, NewUnboundProcedure(sym.Name)
		}
		callee = v
	} else {
		v, err := eval(c.Callee, env)
		if err != nil {
			return nil, err
		}
		callee = v
	}

	proc, ok := callee.(*Proc)
	if !ok {
		return nil, NewTypeError("cannot call non-procedure value %v", Format(callee))
	}

	args := make([]Expr, len(c.Args))
	for i, a := range c.Args {
		v, err := eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return applyProc(proc, args)
}

// applyProc invokes proc against already-evaluated arguments — the one
// place a Proc is actually run, shared by evalCall and by map/filter
// (lang/listops.go) so both go through identical arity/binding rules.
func applyProc(proc *Proc, args []Expr) (Expr, error) {
	if len(args) != len(proc.Params) {
		return nil, NewArityMismatch("procedure expects %d argument(s), got %d", len(proc.Params), len(args))
	}
	call := proc.Env.Child()
	for i, p := range proc.Params {
		call.Bind(p, args[i])
	}
	if call.Depth != nil {
		call.Depth.Enter()
		defer call.Depth.Leave()
	}
	return eval(proc.Body, call)
}

func evalPrim(p *Prim, env *Env) (Expr, error) {
	switch p.Tag {
	case PrimIf:
		return evalIf(p.Args, env)
	case PrimDefine:
		return evalDefine(p.Args, env)
	case PrimSet:
		return evalSet(p.Args, env)
	case PrimLambda:
		return evalLambda(p.Args, env)
	case PrimAdd, PrimSub, PrimMul, PrimDiv, PrimMod:
		return evalArith(p.Tag, p.Args, env)
	case PrimGt, PrimLt, PrimGe, PrimLe:
		return evalCompare(p.Tag, p.Args, env)
	case PrimNumberP, PrimSymbolP, PrimProcP, PrimListP, PrimBoolP, PrimStringP, PrimNullP:
		return evalPredicate(p.Tag, p.Args, env)
	case PrimCar, PrimCdr, PrimCons, PrimAppend, PrimMap, PrimFilter:
		return evalListOp(p.Tag, p.Args, env)
	default:
		return nil, NewTypeError("unknown primitive %q", p.Tag)
	}
}

func evalIf(args []Expr, env *Env) (Expr, error) {
	if len(args) != 3 {
		return nil, NewArityMismatch("if requires exactly 3 forms: condition, then, else")
	}
	cond, err := eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if Truthy(cond) {
		return eval(args[1], env)
	}
	return eval(args[2], env)
}

func evalDefine(args []Expr, env *Env) (Expr, error) {
	name, err := nameOf(args[0])
	if err != nil {
		return nil, err
	}
	v, err := eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Bind(name, v)
	return Lit{Kind: LitNil}, nil
}

func evalSet(args []Expr, env *Env) (Expr, error) {
	name, err := nameOf(args[0])
	if err != nil {
		return nil, err
	}
	v, err := eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, v); err != nil {
		return nil, err
	}
	return Lit{Kind: LitNil}, nil
}

func evalLambda(args []Expr, env *Env) (Expr, error) {
	paramList, ok := args[0].(*List)
	if !ok {
		return nil, NewSyntaxError("lambda parameter list must be a List")
	}
	params := make([]string, 0, len(paramList.Items))
	for _, item := range paramList.Items {
		sym, ok := item.(Symbol)
		if !ok {
			return nil, NewMalformedParameter("lambda parameter is not a plain identifier")
		}
		params = append(params, sym.Name)
	}
	return &Proc{Params: params, Body: args[1], Env: env}, nil
}

func nameOf(e Expr) (string, error) {
	s, ok := e.(Str)
	if !ok {
		return "", NewSyntaxError("expected a name, got %v", Format(e))
	}
	return string(s), nil
}
