package repository

import (
	apperrors "github.com/welldanyogia/webrana-posts-backend/internal/errors"
)

// Common repository errors, shared with the rest of the application so that
// callers can match them with errors.Is.
var (
	ErrNotFound = apperrors.ErrNotFound
	ErrStorage  = apperrors.ErrStorage
)
