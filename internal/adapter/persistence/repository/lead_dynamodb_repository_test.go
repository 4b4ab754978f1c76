package repository

import (
	"testing"
	"time"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

func TestLeadItemRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 10, 9, 0, 0, 500, time.UTC)
	l := entities.Lead{
		ID:             "lead-1",
		Title:          "Монтаж вентиляции",
		Status:         entities.StatusNew,
		EstimatedValue: 500000,
		Source:         "website",
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	got := fromLeadItem(toLeadItem(l))
	if got.ID != l.ID || got.Title != l.Title || got.EstimatedValue != 500000 {
		t.Fatalf("lead fields lost: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("timestamp lost precision: %v", got.CreatedAt)
	}
	if got.CustomerID != "" || got.ProjectID != "" {
		t.Fatalf("optional links must stay empty: %+v", got)
	}
}
