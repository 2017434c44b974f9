package analyses

import "errors"

var (
	// ErrEmptyDocument rejects requests before any provider call is made.
	ErrEmptyDocument = errors.New("document text is required")
	// ErrSchemaMismatch marks provider output that fails schema validation.
	ErrSchemaMismatch = errors.New("provider response does not match the assessment schema")
	// ErrStorage marks a failed incident write after a successful analysis.
	ErrStorage = errors.New("incident storage failed")
)

const (
	ErrorCodeValidation          = "validation_error"
	ErrorCodeNotConfigured       = "not_configured"
	ErrorCodeProviderUnreachable = "provider_unreachable"
	ErrorCodeProviderSchema      = "provider_schema"
	ErrorCodeStorage             = "storage_error"
	ErrorCodeInternal            = "internal_error"
)
