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

// Package netrepl exposes the REPL contract of spec.md §6 over a
// websocket instead of stdin/stdout — peripheral transport glue per
// spec.md §1's "out of scope: external collaborators" carve-out, modeled
// directly on the upgrader/read-loop pattern of the teacher's
// scm/network.go "websocket" builtin.
package netrepl

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/nscm-lang/nscm/lang"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server serves one expression-per-text-frame connections, each against
// its own fresh global frame — spec.md §5's "single, shared frame" is
// scoped per REPL session, and a network client is its own session.
type Server struct {
	Addr string
}

// ListenAndServe starts the websocket endpoint and blocks. Each
// connection is handled on its own goroutine, matching the teacher's
// "one goroutine per websocket read loop" shape.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	return http.ListenAndServe(s.Addr, mux)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("netrepl: upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	sessionID := uuid.New()
	env := lang.NewGlobal()
	var writeMu sync.Mutex

	defer func() {
		if r := recover(); r != nil {
			log.Printf("netrepl[%s]: recovered: %v", sessionID, r)
		}
	}()

	for {
		messageType, msg, err := ws.ReadMessage()
		if err != nil {
			if _, ok := err.(*websocket.CloseError); ok {
				return
			}
			log.Printf("netrepl[%s]: read error: %v", sessionID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		reply := evalOne(env, string(msg))
		writeMu.Lock()
		err = ws.WriteMessage(websocket.TextMessage, []byte(reply))
		writeMu.Unlock()
		if err != nil {
			log.Printf("netrepl[%s]: write error: %v", sessionID, err)
			return
		}
	}
}

func evalOne(env *lang.Env, line string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("panic: %v", r)
		}
	}()
	expr, err := lang.Build(line, env)
	if err != nil {
		return err.Error()
	}
	v, err := lang.Eval(expr, env)
	if err != nil {
		return err.Error()
	}
	if lang.Silent(expr) {
		return ""
	}
	return lang.Format(v)
}
