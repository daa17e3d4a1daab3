package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
)

func duplicateKey(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestOrderConflictTranslation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		conflict   bool
	}{
		{
			name:       "unit order violation",
			err:        duplicateKey("units_course_order_key"),
			constraint: "units_course_order_key",
			conflict:   true,
		},
		{
			name:       "lesson order violation",
			err:        duplicateKey("lessons_unit_order_key"),
			constraint: "lessons_unit_order_key",
			conflict:   true,
		},
		{
			name:       "wrapped violation",
			err:        fmt.Errorf("insert unit: %w", duplicateKey("units_course_order_key")),
			constraint: "units_course_order_key",
			conflict:   true,
		},
		{
			name:       "different constraint passes through",
			err:        duplicateKey("users_email_key"),
			constraint: "units_course_order_key",
		},
		{
			name:       "non-database error passes through",
			err:        errors.New("connection reset"),
			constraint: "units_course_order_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderConflict(tt.err, tt.constraint)
			if tt.conflict {
				if !errors.Is(got, apperrors.ErrConflict) {
					t.Errorf("expected conflict, got %v", got)
				}
				return
			}
			if errors.Is(got, apperrors.ErrConflict) {
				t.Errorf("unexpected conflict for %v", tt.err)
			}
			if got != tt.err {
				t.Errorf("error must pass through unchanged, got %v", got)
			}
		})
	}
}
