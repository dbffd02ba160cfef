package service

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/pogodoro/internal/domain"
)

// storeErr classifies a repository failure. Lookups that matched nothing
// keep ErrNotFound; anything else means the store itself misbehaved.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
