package models

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Created(message, id string) CreatedResponse {
	return CreatedResponse{
		Message: message,
		ID:      id,
	}
}

func Message(message string) MessageResponse {
	return MessageResponse{
		Message: message,
	}
}

func Error(err string) ErrorResponse {
	return ErrorResponse{
		Error: err,
	}
}
