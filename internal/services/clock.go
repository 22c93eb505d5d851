package services

import (
	"time"

	"github.com/DB1132/Odoo-hackathon/internal/models"
)

// Clock returns the current time. Tests swap it for a fixed instant.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// dayKey is the server-local calendar date of t.
func dayKey(t time.Time) string {
	return t.In(time.Local).Format(models.DayLayout)
}
