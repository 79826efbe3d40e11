package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: not allowed.
	StatusForbidden = 403
	// StatusNotFound - 404: resource missing.
	StatusNotFound = 404
	// StatusInternalServerError - 500: server fault.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Principal error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: wrong credentials.
	ErrUserPasswordIncorrect
)

// Resident error codes (102xxx).
const (
	// ErrResidentNotFound - 404: resident does not exist.
	ErrResidentNotFound int = iota + 102000
	// ErrFlatAlreadyExist - 400: flat number already registered.
	ErrFlatAlreadyExist
)

// Guard error codes (103xxx).
const (
	// ErrGuardNotFound - 404: guard does not exist.
	ErrGuardNotFound int = iota + 103000
	// ErrGuardAlreadyExist - 400: employee id already registered.
	ErrGuardAlreadyExist
)

// Visitor request error codes (104xxx).
const (
	// ErrVisitorRequestNotFound - 404: visitor request does not exist.
	ErrVisitorRequestNotFound int = iota + 104000
	// ErrVisitorRequestFinalized - 400: request already in a terminal state.
	ErrVisitorRequestFinalized
	// ErrVisitorStatusInvalid - 400: not a valid status value.
	ErrVisitorStatusInvalid
)

// Storage error codes (105xxx).
const (
	// ErrDatabase - 500: backend storage error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
