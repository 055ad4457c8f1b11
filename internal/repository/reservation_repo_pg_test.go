package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewReservationRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewReservationRepository(pool)
	assert.NotNil(t, repo)
}

func TestMapInsertError(t *testing.T) {
	other := errors.New("connection reset")

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "nil", err: nil, expected: nil},
		{name: "exclusion violation", err: &pgconn.PgError{Code: pgExclusionViolation}, expected: ErrOverlap},
		{name: "wrapped exclusion violation", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgExclusionViolation}), expected: ErrOverlap},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgForeignKeyViolation}, expected: ErrRoomMissing},
		{name: "other", err: other, expected: other},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapInsertError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.expected)
		})
	}
}
