package setting

import "context"

// Repository defines persistence for the singleton settings row.
type Repository interface {
	// Get returns the settings row, creating it with defaults when missing.
	Get(ctx context.Context) (Settings, error)

	// Update replaces the settings row.
	Update(ctx context.Context, s Settings) error
}
