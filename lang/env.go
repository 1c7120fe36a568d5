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

// Vars is one frame of an environment chain, grounded on the teacher's
// own `type Vars map[Symbol]Scmer` (scm/scm.go). A key that exists with a
// nil interface value counts for Has but is treated as absent by Lookup.
type Vars map[string]Expr

// DepthTracker receives a notification each time a procedure application
// pushes or pops a call frame, so a caller outside this package (the
// diagnostics package's --stats counters) can sample peak recursion
// depth without lang importing anything beyond the standard library.
type DepthTracker interface {
	Enter()
	Leave()
}

// Env is a node in the append-only, innermost-first environment chain
// spec §3 describes. Outer is nil only for the root (global) frame.
type Env struct {
	Vars  Vars
	Outer *Env
	// Depth, if set, is notified by applyProc on every procedure call
	// and inherited by every Child() frame so the whole chain reports
	// to the same tracker as the root it descends from.
	Depth DepthTracker
}

// NewGlobal creates a fresh root environment with no tail.
func NewGlobal() *Env {
	return &Env{Vars: make(Vars)}
}

// Child creates a new empty frame whose tail is e. Creating a child frame
// never mutates e.
func (e *Env) Child() *Env {
	return &Env{Vars: make(Vars), Outer: e, Depth: e.Depth}
}

// frameOf walks the chain innermost-first and returns the frame that owns
// name, or nil if no frame does.
func (e *Env) frameOf(name string) *Env {
	for env := e; env != nil; env = env.Outer {
		if _, ok := env.Vars[name]; ok {
			return env
		}
	}
	return nil
}

// Has reports whether name resolves anywhere in the chain, matching
// spec §4.3's env.has.
func (e *Env) Has(name string) bool {
	return e.frameOf(name) != nil
}

// Lookup walks the chain innermost-first and returns the first bound
// expression found. A key that exists but whose value is nil is treated
// as absent.
func (e *Env) Lookup(name string) (Expr, bool) {
	frame := e.frameOf(name)
	if frame == nil {
		return nil, false
	}
	v := frame.Vars[name]
	if v == nil {
		return nil, false
	}
	return v, true
}

// Bind installs expr under name in the current frame only — no parent
// traversal — per spec §4.3.
func (e *Env) Bind(name string, expr Expr) {
	e.Vars[name] = expr
}

// Set implements the classical Scheme `set!`: it mutates the frame that
// actually owns name, found by walking the whole chain, rather than
// shadowing it in the current frame. See SPEC_FULL.md §5 for why this
// resolves spec §4.3's open question this way instead of replicating the
// source's shadow-on-write behavior.
func (e *Env) Set(name string, expr Expr) error {
	frame := e.frameOf(name)
	if frame == nil {
		return NewUnboundIdentifier(name)
	}
	frame.Vars[name] = expr
	return nil
}
