package handler

import (
	"testing"
	"time"

	hmocks "github.com/stpnv0/Activities/internal/handler/mocks"
	"github.com/stpnv0/Activities/internal/view"
	"github.com/stretchr/testify/assert"
)

type pageCounter struct {
	created  int
	released int
}

func (pc *pageCounter) factory(t *testing.T) PageFactory {
	return func() (ViewController, PageState, func()) {
		pc.created++
		return hmocks.NewMockViewController(t), view.NewDocument(), func() { pc.released++ }
	}
}

func TestSessions_OpenReusesPage(t *testing.T) {
	var pc pageCounter
	sessions := NewSessions(pc.factory(t), time.Hour)

	_, first := sessions.Open("a")
	_, again := sessions.Open("a")
	_, other := sessions.Open("b")

	assert.Same(t, first, again)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, pc.created)
	assert.Equal(t, 2, sessions.Len())
}

func TestSessions_DropsIdle(t *testing.T) {
	var pc pageCounter
	sessions := NewSessions(pc.factory(t), 10*time.Minute)

	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }

	sessions.Open("a")
	now = now.Add(5 * time.Minute)
	sessions.Open("b")
	now = now.Add(7 * time.Minute)
	sessions.Open("b")

	assert.Equal(t, 1, sessions.Len())
	assert.Equal(t, 1, pc.released)

	sessions.Open("a")
	assert.Equal(t, 3, pc.created)
}

func TestSessions_Close(t *testing.T) {
	var pc pageCounter
	sessions := NewSessions(pc.factory(t), time.Hour)

	sessions.Open("a")
	sessions.Open("b")
	sessions.Close()

	assert.Equal(t, 0, sessions.Len())
	assert.Equal(t, 2, pc.released)
}

func TestSessions_DefaultIdle(t *testing.T) {
	sessions := NewSessions(nil, 0)
	assert.Equal(t, DefaultSessionIdle, sessions.idle)
}
