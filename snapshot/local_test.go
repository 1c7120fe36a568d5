/*
Copyright (C) 2024-2026  Carl-Philip Hänsch

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

package snapshot

import (
	"testing"

	"github.com/nscm-lang/nscm/lang"
)

func TestLocalBackendListMissingDirDoesNotError(t *testing.T) {
	backend := LocalBackend{Dir: t.TempDir() + "/does-not-exist-yet"}
	names, err := backend.List()
	if err != nil {
		t.Fatalf("List on missing dir returned error: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("List on missing dir = %v; want empty", names)
	}
}

func TestLocalBackendRoundTrip(t *testing.T) {
	backend := LocalBackend{Dir: t.TempDir()}
	if err := backend.Save("a", []byte("hello")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := backend.Save("b", []byte("world")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	names, err := backend.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("List = %v; want [a b]", names)
	}

	data, err := backend.Load("a")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("Load(a) = %q; want %q", data, "hello")
	}
}

func TestSaveLoadRoundTripsEnv(t *testing.T) {
	backend := LocalBackend{Dir: t.TempDir()}
	env := lang.NewGlobal()
	env.Bind("x", lang.Int(42))
	env.Bind("greeting", lang.Str("hi"))
	env.Bind("noise", &lang.Proc{Params: []string{"n"}, Body: lang.Symbol{Name: "n"}, Env: env})

	for _, format := range []Format{FormatLZ4, FormatXZ} {
		if err := Save(backend, "snap-"+string(format), format, env); err != nil {
			t.Fatalf("Save(%s): %v", format, err)
		}
		restored, err := Load(backend, "snap-"+string(format), format)
		if err != nil {
			t.Fatalf("Load(%s): %v", format, err)
		}
		if v, ok := restored.Lookup("x"); !ok || v != lang.Int(42) {
			t.Fatalf("restored x = %v, %v; want 42, true", v, ok)
		}
		if v, ok := restored.Lookup("greeting"); !ok || v != lang.Str("hi") {
			t.Fatalf("restored greeting = %v, %v; want hi, true", v, ok)
		}
		if _, ok := restored.Lookup("noise"); ok {
			t.Fatal("restored env should not carry a Proc binding across a snapshot")
		}
	}
}
