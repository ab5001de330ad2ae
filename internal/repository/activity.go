package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/stpnv0/Activities/internal/domain"
)

type ActivityRepository struct {
	mu      sync.RWMutex
	catalog domain.Catalog
}

func NewActivityRepo(seed []domain.Activity) *ActivityRepository {
	return &ActivityRepository{
		catalog: domain.NewCatalog(seed...).Clone(),
	}
}

func (r *ActivityRepository) List(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalog.Clone(), nil
}

func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.catalog.Get(name)
	if !ok {
		return domain.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}

	a.Participants = append(slices.Clone(a.Participants), email)
	r.catalog.Put(a)

	return nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.catalog.Get(name)
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	a.Participants = slices.Delete(slices.Clone(a.Participants), idx, idx+1)
	r.catalog.Put(a)

	return nil
}
