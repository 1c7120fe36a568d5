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
	"sync"

	"github.com/google/btree"
)

type nameItem string

func (a nameItem) Less(than btree.Item) bool {
	return a < than.(nameItem)
}

// Index keeps a Backend's snapshot names in an ordered, incrementally
// updatable tree so --list-snapshots enumerates deterministically
// without a sort pass on every call — the same shape the teacher reaches
// for wherever it needs an ordered index (storage/index.go), at a much
// smaller scale here.
type Index struct {
	mu   sync.Mutex
	tree *btree.BTree
}

// NewIndex builds an Index from a Backend's current listing.
func NewIndex(backend Backend) (*Index, error) {
	names, err := backend.List()
	if err != nil {
		return nil, err
	}
	idx := &Index{tree: btree.New(32)}
	for _, n := range names {
		idx.tree.ReplaceOrInsert(nameItem(n))
	}
	return idx, nil
}

// Add records name as present, e.g. right after a successful Save.
func (idx *Index) Add(name string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.tree.ReplaceOrInsert(nameItem(name))
}

// Remove drops name from the index.
func (idx *Index) Remove(name string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.tree.Delete(nameItem(name))
}

// Names returns every known snapshot name in ascending order.
func (idx *Index) Names() []string {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	names := make([]string, 0, idx.tree.Len())
	idx.tree.Ascend(func(item btree.Item) bool {
		names = append(names, string(item.(nameItem)))
		return true
	})
	return names
}
