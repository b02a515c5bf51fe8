package repository

import "github.com/muhu-travel/backoffice-api/internal/repository/dao"

// Error categories shared by every entity.
var (
	ErrNotFound = dao.ErrNotFound
	ErrConflict = dao.ErrConflict
	ErrInUse    = dao.ErrInUse
)
