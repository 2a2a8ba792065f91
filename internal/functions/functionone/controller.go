package functionone

import (
	"context"
	"fmt"
)

const (
	DefaultName = "world"

	messageFormat = "[Function_1] Hello %s, this is an AWS Lambda HTTP request using controller wrapper to avoid lots of boilerplate"
)

// Controller greets the requested name, defaulting to "world".
func Controller(_ context.Context, req Request) (Response, *ErrorResponse) {
	name := req.Name
	if name == "" {
		name = DefaultName
	}

	return Response{
		Message: fmt.Sprintf(messageFormat, name),
	}, nil
}
