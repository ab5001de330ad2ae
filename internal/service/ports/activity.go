package ports

import (
	"context"

	"github.com/stpnv0/Activities/internal/domain"
)

type ActivityRepo interface {
	List(ctx context.Context) (domain.Catalog, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}
