package lambdahttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

var ErrSerialization = errors.New("could not serialize response body")

// BuildJSONResponse serializes v as the body of a response with the given status.
func BuildJSONResponse(status int, v any) (events.APIGatewayV2HTTPResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("%w: %s", ErrSerialization, err)
	}
	return newResponse(status, body), nil
}

// ResultToResponse maps a controller result to a response. A nil errRsp is a
// success and gives a 200 with rsp as the body, otherwise the result is a 400
// with errRsp as the body.
func ResultToResponse[TResp, TErr any](rsp TResp, errRsp *TErr) (events.APIGatewayV2HTTPResponse, error) {
	if errRsp != nil {
		return BuildJSONResponse(http.StatusBadRequest, errRsp)
	}
	return BuildJSONResponse(http.StatusOK, rsp)
}

func newResponse(status int, body []byte) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			ContentTypeHeader: ContentTypeJSON,
		},
		Body: string(body),
	}
}
