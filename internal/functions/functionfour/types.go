package functionfour

import "time"

type Request struct {
	Name string `json:"name"`
}

type Response struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// greeting is the record written to the greetings table
type greeting struct {
	ID        string    `dynamodbav:"id"`
	Name      string    `dynamodbav:"name"`
	Message   string    `dynamodbav:"message"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}
