package constants

const (
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeDuplicateUser      = "DUPLICATE_USER"
	ErrCodeCursorNotFound     = "CURSOR_NOT_FOUND"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgUserNotFound       = "user not found"
	ErrMsgDuplicateUser      = "user with this email already exists"
	ErrMsgCursorNotFound     = "cursor not found"
	ErrMsgInvalidRequestBody = "failed to parse request body"
	ErrMsgValidationFailed   = "request validation failed"
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgRateLimited        = "rate limit exceeded"
	ErrMsgDatabase           = "Internal server error"
	ErrMsgInternalError      = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeUserNotFound:       ErrMsgUserNotFound,
	ErrCodeDuplicateUser:      ErrMsgDuplicateUser,
	ErrCodeCursorNotFound:     ErrMsgCursorNotFound,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:   ErrMsgValidationFailed,
	ErrCodeUnauthorized:       ErrMsgUnauthorized,
	ErrCodeRateLimited:        ErrMsgRateLimited,
	ErrCodeDatabase:           ErrMsgDatabase,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeValidationFailed:
		return 400
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeUserNotFound, ErrCodeCursorNotFound:
		return 404
	case ErrCodeDuplicateUser:
		return 409
	case ErrCodeRateLimited:
		return 429
	case ErrCodeDatabase, ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
