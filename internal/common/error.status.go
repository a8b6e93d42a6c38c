package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	// Client Error Codes (4xx)
	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusPaymentRequired = 402
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusRequestTimeout  = 408
	StatusTooManyRequests = 429

	// Server Error Codes (5xx)
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

// Response Messages
const (
	// Success Messages
	MsgSuccess   = "Operation completed successfully"
	MsgCreated   = "Resource created successfully"
	MsgAccepted  = "Request accepted"
	MsgNoContent = "No content"

	// Error Messages
	MsgBadRequest         = "Invalid request"
	MsgNotFound           = "Resource not found"
	MsgConflict           = "Data conflict"
	MsgTooManyRequests    = "Too many requests"
	MsgInternalError      = "Internal server error"
	MsgServiceUnavailable = "Service unavailable"

	// Validation Messages
	MsgValidationError = "Invalid input data"
	MsgDatabaseError   = "Database interaction error"
	MsgInvalidFormat   = "Invalid data format"
)

// ErrorCode carries a hierarchical error classification.
type ErrorCode struct {
	Code        string // e.g. VAL_001
	Category    string // e.g. Validation
	SubCategory string // e.g. Input
	Description string
}

// Error codes grouped by category.
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Configuration Errors (CFG_xxx)
	ErrCodeConfiguration = ErrorCode{
		Code:        "CFG_001",
		Category:    "Configuration",
		SubCategory: "Missing",
		Description: "Required configuration is missing or invalid",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "General validation error",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Invalid data format",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "General database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Database query error",
	}

	// External Provider Errors (PRV_xxx)
	ErrCodeProvider = ErrorCode{
		Code:        "PRV",
		Category:    "Provider",
		SubCategory: "General",
		Description: "External provider error",
	}

	ErrCodeProviderRequest = ErrorCode{
		Code:        "PRV_001",
		Category:    "Provider",
		SubCategory: "Request",
		Description: "External provider rejected the request",
	}

	ErrCodeProviderTimeout = ErrorCode{
		Code:        "PRV_002",
		Category:    "Provider",
		SubCategory: "Timeout",
		Description: "External provider did not respond in time",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "General business logic error",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Invalid business state",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Invalid business operation",
	}
)

// Error is the detailed error structure used across services and handlers.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is comparison by code and message.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError builds an error with full classification.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Invalid input data", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Invalid data format", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Required field is missing", StatusBadRequest, nil)

	// Configuration Errors
	ErrMissingConfiguration = NewError(ErrCodeConfiguration, "Required configuration is missing", StatusInternalServerError, nil)

	// Database Errors
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "Data not found", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Data already exists", StatusConflict, nil)
	ErrConstraint  = NewError(ErrCodeDatabaseQuery, "Data constraint violation", StatusBadRequest, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Database transaction error", StatusInternalServerError, nil)

	// Provider Errors
	ErrProviderTimeout = NewError(ErrCodeProviderTimeout, "External provider timed out", StatusRequestTimeout, nil)

	// Business Logic Errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Invalid state", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Invalid operation", StatusBadRequest, nil)
)

// MongoDB Error Messages
const (
	MsgMongoConnection = "MongoDB connection error"
	MsgMongoNetwork    = "MongoDB network error"
	MsgMongoTimeout    = "MongoDB connection timed out"
	MsgMongoAuth       = "MongoDB authentication error"
	MsgMongoQuery      = "MongoDB query error"
	MsgMongoWrite      = "MongoDB write error"
	MsgMongoDuplicate  = "Duplicate data in MongoDB"
	MsgMongoSystem     = "MongoDB system error"
)

// MongoDB Specific Errors
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, MsgMongoConnection, StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeDatabase, MsgMongoAuth, StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgMongoQuery, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgMongoWrite, StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, MsgMongoSystem, StatusInternalServerError, nil)
)

// ConvertMongoError maps a MongoDB driver error to a system error.
// ErrNotFound passes through untouched so callers can branch on it.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return err
	}
	if err == ErrNotFound || err.Error() == ErrNotFound.Error() {
		return ErrNotFound
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
