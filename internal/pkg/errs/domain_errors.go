package errs

import "errors"

// Domain-specific sentinel errors for the quote usecase layer
var (
	// Rate resolution errors
	ErrRatePlanNotFound = errors.New("no applicable rate plan")
	// A space without a parent lot has nothing to fall back to.
	ErrStandaloneSpaceRateNotFound = errors.New("no rate plan for standalone space")

	// Quote errors
	ErrInvalidInterval    = errors.New("quote interval end must be after start")
	ErrInvalidQuoteTarget = errors.New("either lot id or space id is required")

	// Rate computation errors (logged, never fatal)
	ErrUnsupportedRateType = errors.New("unsupported rate type")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
