//go:build ceph

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
	"path"
	"sync"

	"github.com/ceph/go-ceph/rados"
)

// CephBackend stores each snapshot as one RADOS object, grounded on
// storage/persistence-ceph.go's connection/IOContext wiring, gated
// behind the same build tag since go-ceph needs cgo and librados at
// build time.
type CephBackend struct {
	ClusterName string
	UserName    string
	ConfFile    string
	Pool        string
	Prefix      string

	mu     sync.Mutex
	conn   *rados.Conn
	ioctx  *rados.IOContext
	opened bool
}

func (b *CephBackend) ensureOpen() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opened {
		return nil
	}
	conn, err := rados.NewConnWithClusterAndUser(b.ClusterName, b.UserName)
	if err != nil {
		return err
	}
	if b.ConfFile != "" {
		if err := conn.ReadConfigFile(b.ConfFile); err != nil {
			return err
		}
	} else {
		_ = conn.ReadDefaultConfigFile()
	}
	if err := conn.Connect(); err != nil {
		return err
	}
	ioctx, err := conn.OpenIOContext(b.Pool)
	if err != nil {
		conn.Shutdown()
		return err
	}
	b.conn = conn
	b.ioctx = ioctx
	b.opened = true
	return nil
}

func (b *CephBackend) obj(name string) string {
	return path.Join(b.Prefix, name)
}

func (b *CephBackend) Save(name string, data []byte) error {
	if err := b.ensureOpen(); err != nil {
		return err
	}
	return b.ioctx.WriteFull(b.obj(name), data)
}

func (b *CephBackend) Load(name string) ([]byte, error) {
	if err := b.ensureOpen(); err != nil {
		return nil, err
	}
	stat, err := b.ioctx.Stat(b.obj(name))
	if err != nil {
		return nil, err
	}
	buf := make([]byte, stat.Size)
	n, err := b.ioctx.Read(b.obj(name), buf, 0)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (b *CephBackend) List() ([]string, error) {
	if err := b.ensureOpen(); err != nil {
		return nil, err
	}
	iter, err := b.ioctx.Iter()
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var names []string
	prefix := b.Prefix
	for iter.Next() {
		obj := iter.Value()
		if path.Dir(obj) == prefix || prefix == "" {
			names = append(names, path.Base(obj))
		}
	}
	return names, nil
}
