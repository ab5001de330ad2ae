package handler

import (
	"sync"
	"time"
)

const (
	SessionCookie      = "activities_session"
	DefaultSessionIdle = 30 * time.Minute
)

// PageFactory builds the controller and document for a new visitor. release
// is called when the session is dropped.
type PageFactory func() (controller ViewController, page PageState, release func())

type session struct {
	controller ViewController
	page       PageState
	release    func()
	lastSeen   time.Time
}

// Sessions keeps one page per visitor, keyed by the session cookie.
// Sessions idle for longer than idle are dropped.
type Sessions struct {
	mu        sync.Mutex
	newPage   PageFactory
	idle      time.Duration
	pages     map[string]*session
	lastSweep time.Time
	now       func() time.Time
}

func NewSessions(newPage PageFactory, idle time.Duration) *Sessions {
	if idle <= 0 {
		idle = DefaultSessionIdle
	}
	return &Sessions{
		newPage: newPage,
		idle:    idle,
		pages:   make(map[string]*session),
		now:     time.Now,
	}
}

// Open returns the visitor's page, creating it on first use.
func (s *Sessions) Open(id string) (ViewController, PageState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	sess, ok := s.pages[id]
	if !ok {
		controller, page, release := s.newPage()
		sess = &session{controller: controller, page: page, release: release}
		s.pages[id] = sess
	}
	sess.lastSeen = now

	return sess.controller, sess.page
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Close drops every session.
func (s *Sessions) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.pages {
		sess.drop()
		delete(s.pages, id)
	}
}

func (s *Sessions) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.idle {
		return
	}
	s.lastSweep = now

	for id, sess := range s.pages {
		if now.Sub(sess.lastSeen) >= s.idle {
			sess.drop()
			delete(s.pages, id)
		}
	}
}

func (sess *session) drop() {
	if sess.release != nil {
		sess.release()
	}
}
