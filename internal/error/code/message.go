package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "failed to bind request parameters",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",

	// Principals
	ErrUserNotFound:          "user does not exist",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect username or password",

	// Residents
	ErrResidentNotFound: "resident does not exist",
	ErrFlatAlreadyExist: "flat number already exists",

	// Guards
	ErrGuardNotFound:     "guard does not exist",
	ErrGuardAlreadyExist: "employee id already exists",

	// Visitor requests
	ErrVisitorRequestNotFound:  "visitor request does not exist",
	ErrVisitorRequestFinalized: "visitor request has already been finalized",
	ErrVisitorStatusInvalid:    "invalid visitor request status",

	// Storage
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record does not exist",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Principals
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Residents
	ErrResidentNotFound: StatusNotFound,
	ErrFlatAlreadyExist: StatusBadRequest,

	// Guards
	ErrGuardNotFound:     StatusNotFound,
	ErrGuardAlreadyExist: StatusBadRequest,

	// Visitor requests
	ErrVisitorRequestNotFound:  StatusNotFound,
	ErrVisitorRequestFinalized: StatusBadRequest,
	ErrVisitorStatusInvalid:    StatusBadRequest,

	// Storage
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
