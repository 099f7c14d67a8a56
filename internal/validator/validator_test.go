package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint
		wantErr error
	}{
		{"valid", "17", 17, nil},
		{"padded", " 3 ", 3, nil},
		{"empty", "", 0, ErrEmptyInput},
		{"zero", "0", 0, ErrInvalidID},
		{"negative", "-1", 0, ErrInvalidID},
		{"word", "abc", 0, ErrInvalidID},
		{"overflow", "99999999999", 0, ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"defaults", 0, 0, DefaultLimit, 0},
		{"negative", -5, -5, DefaultLimit, 0},
		{"capped", 500, 10, MaxLimit, 10},
		{"passthrough", 50, 25, 50, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ValidatePagination(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParsePagination_IgnoresGarbage(t *testing.T) {
	limit, offset := ParsePagination("ten", "x")
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, 0, offset)

	limit, offset = ParsePagination("5", "15")
	assert.Equal(t, 5, limit)
	assert.Equal(t, 15, offset)
}
