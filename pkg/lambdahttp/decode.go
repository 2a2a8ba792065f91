package lambdahttp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const (
	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// ErrorBody is the payload of the responses the adapter builds itself.
type ErrorBody struct {
	Error string `json:"error"`
}

var (
	EmptyBodyError   = ErrorBody{Error: "Expected JSON body, got empty body"}
	InvalidJSONError = ErrorBody{Error: "Invalid JSON request body"}

	emptyBodyJson   []byte
	invalidJSONJson []byte

	jsonNull = []byte("null")
)

// Marshal JSON for canned responses
func init() {
	var err error

	emptyBodyJson, err = json.Marshal(EmptyBodyError)
	if err != nil {
		panic(err)
	}

	invalidJSONJson, err = json.Marshal(InvalidJSONError)
	if err != nil {
		panic(err)
	}
}

// ParseJSONBody decodes the event body into a TReq.
//
// It returns (req, nil) when the body parses, (nil, nil) when there is no body
// and (nil, rsp) when the body is present but is not valid JSON for TReq, where
// rsp is the 400 response to send back.
func ParseJSONBody[TReq any](event events.APIGatewayV2HTTPRequest) (*TReq, *events.APIGatewayV2HTTPResponse) {
	body, err := eventBody(event)
	if err != nil {
		rsp := invalidJSONResponse()
		return nil, &rsp
	}
	if len(body) == 0 {
		return nil, nil
	}

	// A null body is not a TReq
	if bytes.Equal(bytes.TrimSpace(body), jsonNull) {
		rsp := invalidJSONResponse()
		return nil, &rsp
	}

	req := new(TReq)
	if err := json.Unmarshal(body, req); err != nil {
		rsp := invalidJSONResponse()
		return nil, &rsp
	}
	return req, nil
}

// eventBody reduces text and base64 encoded binary bodies to raw bytes
func eventBody(event events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if event.Body == "" {
		return nil, nil
	}
	if event.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(event.Body)
	}
	return []byte(event.Body), nil
}

func emptyBodyResponse() events.APIGatewayV2HTTPResponse {
	return newResponse(http.StatusBadRequest, emptyBodyJson)
}

func invalidJSONResponse() events.APIGatewayV2HTTPResponse {
	return newResponse(http.StatusBadRequest, invalidJSONJson)
}
