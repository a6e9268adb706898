package pkg

type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

type ErrResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func NewResponse(status int, data any, msg string) Response {
	return Response{
		StatusCode: status,
		Data:       data,
		Message:    msg,
	}
}

func NewErrResponse(err *AppError) ErrResponse {
	return ErrResponse{
		StatusCode: err.HttpStatus,
		Message:    err.Message,
		Success:    false,
	}
}
