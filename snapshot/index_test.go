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
	"reflect"
	"testing"
)

func TestNewIndexReflectsBackendListing(t *testing.T) {
	backend := LocalBackend{Dir: t.TempDir()}
	backend.Save("charlie", []byte("c"))
	backend.Save("alpha", []byte("a"))
	backend.Save("bravo", []byte("b"))

	idx, err := NewIndex(backend)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	got := idx.Names()
	want := []string{"alpha", "bravo", "charlie"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v; want %v", got, want)
	}
}

func TestIndexAddAndRemove(t *testing.T) {
	idx, err := NewIndex(LocalBackend{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	idx.Add("z")
	idx.Add("a")
	if got := idx.Names(); !reflect.DeepEqual(got, []string{"a", "z"}) {
		t.Fatalf("Names() after Add = %v; want [a z]", got)
	}
	idx.Remove("a")
	if got := idx.Names(); !reflect.DeepEqual(got, []string{"z"}) {
		t.Fatalf("Names() after Remove = %v; want [z]", got)
	}
}
