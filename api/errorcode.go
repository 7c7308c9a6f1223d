package api

import "github.com/safeshift-health/safeshift-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "invalid api key",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: store.ErrInvalidCredentials.Error(),

		1200: store.ErrShiftNotFound.Error(),
		1201: "query shift history error",

		1300: store.ErrAlertNotFound.Error(),
		1301: "pattern scan error",

		1400: store.ErrTimeOffNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidAPIKey              = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorShiftNotFound = errorJSON(1200)
	errorShiftHistory  = errorJSON(1201)

	errorAlertNotFound = errorJSON(1300)
	errorPatternScan   = errorJSON(1301)

	errorTimeOffNotFound = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
