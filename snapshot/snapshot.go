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

// Package snapshot persists a whole nscm global frame between runs.
//
// The teacher's storage package speaks a much richer PersistenceEngine
// interface (storage/persistence.go): per-shard columns, append-only
// logs, content-addressed blobs with refcounting. nscm has no shards or
// columns — its only durable unit is "the global frame" — so Backend
// below reduces that interface down to Save/Load/List of one named blob
// per snapshot, while keeping the same "pick a storage target at
// runtime" shape.
package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"

	"github.com/nscm-lang/nscm/lang"
)

// Format selects the compression codec applied before a Backend ever
// sees the bytes, matching the teacher's go.mod stocking both a fast
// codec for everyday persistence and a high-ratio one for archival data.
type Format string

const (
	FormatLZ4 Format = "lz4"
	FormatXZ  Format = "xz"
)

// Backend is where a snapshot's compressed bytes are actually stored.
// Grounded on storage.PersistenceEngine (storage/persistence.go),
// reduced from shard/column/blob granularity to one named blob.
type Backend interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
	List() ([]string, error)
}

// frame is the gob-encoded shape of a global environment: only the
// bindings, never the environment's own Outer pointer (a snapshot always
// restores as a new root frame).
type frame struct {
	Vars map[string]lang.Expr
}

func init() {
	gob.Register(lang.Int(0))
	gob.Register(lang.Float(0))
	gob.Register(lang.Str(""))
	gob.Register(lang.Lit{})
	gob.Register(&lang.List{})
	gob.Register(lang.Symbol{})
	gob.Register(&lang.Prim{})
	gob.Register(&lang.Call{})
	// lang.Proc is intentionally not registered: a closure's captured
	// environment cannot be serialized meaningfully across process
	// boundaries, so a Proc value at the top level of a snapshot is
	// dropped (see Save).
}

// Save gob-encodes the bindings of env's current frame, compresses them
// per format, and hands the result to backend under name. Proc-valued
// bindings are skipped: a closure's captured *lang.Env has no meaningful
// serialized form once the process exits.
func Save(backend Backend, name string, format Format, env *lang.Env) error {
	f := frame{Vars: make(map[string]lang.Expr, len(env.Vars))}
	for k, v := range env.Vars {
		if _, isProc := v.(*lang.Proc); isProc {
			continue
		}
		f.Vars[k] = v
	}

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(f); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	compressed, err := compress(raw.Bytes(), format)
	if err != nil {
		return fmt.Errorf("snapshot: compress: %w", err)
	}
	return backend.Save(name, compressed)
}

// Load restores name from backend into a fresh *lang.Env, decompressing
// with the codec named by format; the codec is not detected from the
// data.
func Load(backend Backend, name string, format Format) (*lang.Env, error) {
	compressed, err := backend.Load(name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	raw, err := decompress(compressed, format)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}
	var f frame
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&f); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	env := lang.NewGlobal()
	for k, v := range f.Vars {
		env.Bind(k, v)
	}
	return env, nil
}

func compress(data []byte, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch format {
	case FormatXZ:
		w, err = xz.NewWriter(&buf)
	default:
		w = lz4.NewWriter(&buf)
	}
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte, format Format) ([]byte, error) {
	var r io.Reader
	var err error
	switch format {
	case FormatXZ:
		r, err = xz.NewReader(bytes.NewReader(data))
	default:
		r = lz4.NewReader(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
