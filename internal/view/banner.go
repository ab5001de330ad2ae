package view

import (
	"sync"
	"time"
)

const DefaultMessageTTL = 5 * time.Second

type messageSurface interface {
	ShowMessage(text string, kind MessageKind, hideAt time.Time)
	HideMessage()
}

// Banner shows one message at a time and hides it ttl after the latest Show.
// A new Show stops the pending hide; gen discards a hide that fired anyway.
type Banner struct {
	mu      sync.Mutex
	surface messageSurface
	ttl     time.Duration
	timer   *time.Timer
	gen     uint64
}

func NewBanner(surface messageSurface, ttl time.Duration) *Banner {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return &Banner{
		surface: surface,
		ttl:     ttl,
	}
}

func (b *Banner) Show(text string, kind MessageKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.surface.ShowMessage(text, kind, time.Now().Add(b.ttl))

	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.timer = time.AfterFunc(b.ttl, func() {
		b.hide(gen)
	})
}

func (b *Banner) hide(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen {
		return
	}
	b.surface.HideMessage()
	b.timer = nil
}

// Stop cancels a pending hide and leaves the message as it is.
func (b *Banner) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
}
