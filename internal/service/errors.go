package service

import "github.com/muhu-travel/backoffice-api/internal/repository"

var (
	ErrNotFound = repository.ErrNotFound
	ErrConflict = repository.ErrConflict
	ErrInUse    = repository.ErrInUse
)
