package dto

import (
	"time"

	"github.com/GregMSThompson/gatabank/internal/models"
)

// DateLayout is the wire form of calendar dates such as a date of birth.
const DateLayout = "2006-01-02"

// Meta is the common part of every top-level entity on the wire.
type Meta struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Status    models.Status `json:"status"`
}

func metaOf(e models.Entity) Meta {
	return Meta{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Status:    e.Status,
	}
}

// mapAll converts a slice and never returns nil, so lists encode as [].
func mapAll[M any, R any](in []M, fn func(*M) R) []R {
	out := make([]R, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}

func mapPtrs[M any, R any](in []*M, fn func(*M) R) []R {
	out := make([]R, 0, len(in))
	for _, m := range in {
		out = append(out, fn(m))
	}
	return out
}
