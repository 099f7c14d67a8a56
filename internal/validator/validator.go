// Package validator provides input parsing and sanitization helpers
// for the HTTP layer.
package validator

import (
	"errors"
	"strconv"
	"strings"
)

// Validation errors
var (
	ErrInvalidID  = errors.New("id must be a positive integer")
	ErrEmptyInput = errors.New("input cannot be empty")
)

// ParseID parses a path identifier into a record id.
// Zero, negative and non-numeric values are rejected.
func ParseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyInput
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// Pagination constants
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ValidatePagination validates and sanitizes pagination parameters.
// Returns sanitized limit and offset values.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// ParsePagination reads limit/offset query values, treating bad input as unset
func ParsePagination(limitParam, offsetParam string) (int, int) {
	limit, _ := strconv.Atoi(limitParam)
	offset, _ := strconv.Atoi(offsetParam)
	return ValidatePagination(limit, offset)
}
