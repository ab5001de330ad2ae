package view

import (
	"slices"
	"sync"
	"time"
)

const (
	LoadingText           = "Loading activities..."
	SelectPlaceholderText = "-- Select an activity --"
)

type ListState string

const (
	ListLoading ListState = "loading"
	ListLoaded  ListState = "loaded"
	ListFailed  ListState = "error"
)

type Option struct {
	Value string
	Label string
}

type Message struct {
	Text    string
	Kind    MessageKind
	Visible bool
}

type Form struct {
	Activity string
	Email    string
}

// Snapshot is a copy of the document safe to render.
type Snapshot struct {
	State   ListState
	Status  string
	Cards   []Card
	Options []Option
	Message Message
	Form    Form

	hideAt time.Time
}

func (s Snapshot) Loaded() bool {
	return s.State == ListLoaded
}

// HideAfterMS is how long the visible banner has left, in milliseconds.
func (s Snapshot) HideAfterMS() int64 {
	if !s.Message.Visible {
		return 0
	}
	return max(time.Until(s.hideAt).Milliseconds(), 0)
}

// Document is an in-memory Surface. Handlers on different goroutines may
// touch it, so all access goes through mu.
type Document struct {
	mu      sync.RWMutex
	state   ListState
	status  string
	cards   []Card
	options []Option
	message Message
	hideAt  time.Time
	form    Form
}

func NewDocument() *Document {
	return &Document{
		state:   ListLoading,
		status:  LoadingText,
		options: []Option{placeholderOption()},
	}
}

func placeholderOption() Option {
	return Option{Value: "", Label: SelectPlaceholderText}
}

func (d *Document) ReplaceActivities(cards []Card) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = ListLoaded
	d.status = ""
	d.cards = cloneCards(cards)
}

func (d *Document) ShowLoadFailure(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = ListFailed
	d.status = text
	d.cards = nil
}

func (d *Document) ReplaceActivityOptions(names []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	options := make([]Option, 0, len(names)+1)
	options = append(options, placeholderOption())
	for _, name := range names {
		options = append(options, Option{Value: name, Label: name})
	}
	d.options = options
}

func (d *Document) ShowMessage(text string, kind MessageKind, hideAt time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.message = Message{Text: text, Kind: kind, Visible: true}
	d.hideAt = hideAt
}

func (d *Document) HideMessage() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.message.Visible = false
}

func (d *Document) ResetForm() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.form = Form{}
}

// FillForm records what the user typed into the signup form.
func (d *Document) FillForm(activity, email string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.form = Form{Activity: activity, Email: email}
}

func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Snapshot{
		State:   d.state,
		Status:  d.status,
		Cards:   cloneCards(d.cards),
		Options: slices.Clone(d.options),
		Message: d.message,
		Form:    d.form,
		hideAt:  d.hideAt,
	}
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	for i, c := range cards {
		c.Participants = slices.Clone(c.Participants)
		out[i] = c
	}
	return out
}
