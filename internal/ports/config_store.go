package ports

import "context"

// Read access to the runtime configuration table.
type ConfigStore interface {
	// Return the stored value for key. ok is false when the key is absent.
	GetConfigValue(ctx context.Context, key string) (value string, ok bool, err error)
}
