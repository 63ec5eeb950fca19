package domain

import "time"

// Client represents a customer. Phone is the de-facto lookup key for the
// "my appointments" flow; uniqueness is not enforced globally.
// TotalVisits and LastVisit are informational counters, they take no part
// in availability computation.
type Client struct {
	ID          int64
	Name        string
	Phone       string
	Email       *string
	TotalVisits int
	LastVisit   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
