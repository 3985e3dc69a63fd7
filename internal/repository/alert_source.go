package repository

import "context"

// AlertSource returns the raw alert log payload (a JSON array).
type AlertSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}
