package ports

import (
	"context"

	"github.com/cloud-panel/admin-api/internal/core/domain"
)

// DirectoryCache is a short-lived cache of the full user listing. A miss
// is reported as (nil, false, nil); cache errors are surfaced so the
// caller can fall through to storage.
type DirectoryCache interface {
	Get(ctx context.Context) ([]*domain.User, bool, error)
	Set(ctx context.Context, users []*domain.User) error
	// Invalidate drops the cached listing. Called after every mutation.
	Invalidate(ctx context.Context) error
}
