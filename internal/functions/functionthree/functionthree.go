package functionthree

import "context"

const message = "[Function_3] Hello function_three, this is an AWS Lambda HTTP request using controller wrapper to avoid lots of boilerplate"

type Response struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Controller(context.Context) (Response, *ErrorResponse) {
	return Response{Message: message}, nil
}
