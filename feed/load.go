package feed

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnexpectedShape means the catalog answered but not with a list of items.
var ErrUnexpectedShape = errors.New("unexpected catalog response shape")

// Source fetches the catalog once.
type Source interface {
	ListFood(ctx context.Context) ([]Item, error)
}

// Load fetches items from src and builds a reel. There is no retry: a failed
// fetch is the caller's error state.
func Load(ctx context.Context, src Source, player Player) (*Reel, error) {
	items, err := src.ListFood(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	return NewReel(items, player), nil
}
