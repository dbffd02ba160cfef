package repository

import "github.com/alexanderramin/pogodoro/internal/domain"

// ErrNotFound is returned when a lookup or targeted update matches no row.
var ErrNotFound = domain.ErrNotFound
