package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or contradictory.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a negative backup interval pointing at no storage).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative backup interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
