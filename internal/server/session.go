package server

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/dietradar/core"
	"github.com/huangsam/dietradar/schema"
)

// session is one viewer's legend and hover state.
type session struct {
	id      string
	created time.Time

	mu    sync.Mutex
	state *core.InteractionState
}

// sessionInfo is the JSON view of a session.
type sessionInfo struct {
	ID      string      `json:"id"`
	Created time.Time   `json:"created"`
	Hovered schema.Diet `json:"hovered,omitempty"`
	Hidden  []string    `json:"hidden"`
}

func (s *session) info() sessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := sessionInfo{ID: s.id, Created: s.created, Hidden: []string{}}
	if d, ok := s.state.Hovered(); ok {
		info.Hovered = d
	}
	for _, d := range schema.AllDiets {
		if !s.state.IsVisible(d) {
			info.Hidden = append(info.Hidden, string(d))
		}
	}
	return info
}

// withState runs fn while holding the session lock.
func (s *session) withState(fn func(*core.InteractionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// newSession registers a session whose state starts from the configured events.
func (s *Server) newSession() *session {
	sess := &session{
		id:      uuid.NewString(),
		created: time.Now().UTC(),
		state:   core.StateFromConfig(s.cfg),
	}
	s.sessMu.Lock()
	s.sessions[sess.id] = sess
	s.sessMu.Unlock()
	return sess
}

func (s *Server) getSession(id string) (*session, bool) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) deleteSession(id string) bool {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// listSessions returns sessions oldest first.
func (s *Server) listSessions() []*session {
	s.sessMu.Lock()
	out := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	s.sessMu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].created.Equal(out[j].created) {
			return out[i].id < out[j].id
		}
		return out[i].created.Before(out[j].created)
	})
	return out
}
