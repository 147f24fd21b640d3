package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Core taxonomy for pin operations
	ErrNotFound               = fmt.Errorf("item not found")
	ErrAllStrategiesExhausted = fmt.Errorf("all strategies exhausted")
	ErrUnsupported            = fmt.Errorf("operation unsupported")
	ErrTimeout                = fmt.Errorf("operation timed out")

	// Collaborator errors
	ErrHelperFailed      = fmt.Errorf("helper process failed")
	ErrSourceUnavailable = fmt.Errorf("enumeration source unavailable")
	ErrRegistryAccess    = fmt.Errorf("registry access failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
