package view

import (
	"testing"
	"time"

	"github.com/stpnv0/Activities/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_InitialState(t *testing.T) {
	snap := NewDocument().Snapshot()

	assert.Equal(t, ListLoading, snap.State)
	assert.Equal(t, LoadingText, snap.Status)
	assert.Equal(t, []Option{{Value: "", Label: SelectPlaceholderText}}, snap.Options)
	assert.False(t, snap.Message.Visible)
}

func TestDocument_ReplaceActivitiesDropsOldCards(t *testing.T) {
	doc := NewDocument()

	doc.ReplaceActivities([]Card{{Name: "A"}, {Name: "B"}})
	doc.ReplaceActivities([]Card{{Name: "C"}})

	snap := doc.Snapshot()
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, "C", snap.Cards[0].Name)
}

func TestDocument_SnapshotIsCopy(t *testing.T) {
	doc := NewDocument()
	doc.ReplaceActivities([]Card{NewCard(domain.Activity{Name: "Chess", Participants: []string{"a@x.com"}})})

	snap := doc.Snapshot()
	snap.Cards[0].Participants[0].Email = "changed@x.com"

	assert.Equal(t, "a@x.com", doc.Snapshot().Cards[0].Participants[0].Email)
}

func TestDocument_LoadFailureThenRecovery(t *testing.T) {
	doc := NewDocument()

	doc.ShowLoadFailure(LoadFailureText)
	assert.Equal(t, ListFailed, doc.Snapshot().State)

	doc.ReplaceActivities([]Card{{Name: "Chess"}})
	snap := doc.Snapshot()
	assert.Equal(t, ListLoaded, snap.State)
	assert.Empty(t, snap.Status)
}

func TestDocument_FormFillAndReset(t *testing.T) {
	doc := NewDocument()

	doc.FillForm("Chess", "a@x.com")
	assert.Equal(t, Form{Activity: "Chess", Email: "a@x.com"}, doc.Snapshot().Form)

	doc.ResetForm()
	assert.Equal(t, Form{}, doc.Snapshot().Form)
}

func TestNewCard_EmptyRoster(t *testing.T) {
	card := NewCard(domain.Activity{Name: "Art", MaxParticipants: 5})

	assert.Empty(t, card.Participants)
	assert.Equal(t, NoParticipantsText, card.Placeholder())
	assert.Equal(t, "5 spots left", card.Availability())
}

func TestDocument_HideAfterMS(t *testing.T) {
	doc := NewDocument()
	assert.Zero(t, doc.Snapshot().HideAfterMS())

	doc.ShowMessage("hello", MessageSuccess, time.Now().Add(2*time.Second))
	left := doc.Snapshot().HideAfterMS()
	assert.Greater(t, left, int64(1000))
	assert.LessOrEqual(t, left, int64(2000))

	doc.ShowMessage("late", MessageError, time.Now().Add(-time.Second))
	assert.Zero(t, doc.Snapshot().HideAfterMS())

	doc.HideMessage()
	assert.Zero(t, doc.Snapshot().HideAfterMS())
}
