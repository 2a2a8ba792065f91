package functiontwo

import (
	"context"
)

const MyResponse = "Hello from Function One!"

// Request is the raw invocation payload; Message defaults to "".
type Request struct {
	Message string `json:"message"`
}

type Response struct {
	ReqMessage string `json:"req_message"`
	MyResponse string `json:"my_response"`
}

// Handle is registered with the Lambda runtime directly, without the HTTP
// adapter, so it receives the invocation payload as is.
func Handle(_ context.Context, req Request) (Response, error) {
	return Response{
		ReqMessage: req.Message,
		MyResponse: MyResponse,
	}, nil
}
