package httpdto

// ErrorResponse is the body of every non-2xx answer. Successful answers
// carry the bare record with no envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func NewErrorResponse(err string, code string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   err,
		Code:    code,
	}
}
