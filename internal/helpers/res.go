package helpers

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

// ValidationErrorResponse carries the full field-error list so clients see
// every failing field, not just the first.
func ValidationErrorResponse(fieldErrors interface{}) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   "validation failed",
		Errors:  fieldErrors,
	}
}
