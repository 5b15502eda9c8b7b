package errors

// ErrorCode is the application level error code returned in error bodies.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1005

	// Auth
	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED         ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS   ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND        ErrorCode = 2003
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = 2005

	// AI
	ErrorCode_AI_EXTRACTION_FAILED ErrorCode = 3001

	// Database
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:        "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN: "AUTH_INVALID_REFRESH_TOKEN",
	ErrorCode_AI_EXTRACTION_FAILED:       "AI_EXTRACTION_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:      "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
