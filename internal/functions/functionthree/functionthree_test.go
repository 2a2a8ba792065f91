package functionthree_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lambda-functions/internal/functions/functionthree"
	"lambda-functions/pkg/lambdahttp"
)

func Test_Handler(t *testing.T) {
	h := lambdahttp.WrapNoInput(zap.NewNop(), functionthree.Controller)

	tests := []struct {
		name  string
		event events.APIGatewayV2HTTPRequest
	}{
		{
			name: "Happy path - Empty body",
		},
		{
			name:  "Happy path - JSON body",
			event: events.APIGatewayV2HTTPRequest{Body: `{"name":"world"}`},
		},
		{
			name:  "Happy path - Garbage body",
			event: events.APIGatewayV2HTTPRequest{Body: "not-json"},
		},
		{
			name: "Happy path - Binary body",
			event: events.APIGatewayV2HTTPRequest{
				Body:            base64.StdEncoding.EncodeToString([]byte{0x00, 0xff}),
				IsBase64Encoded: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsp, err := h(context.Background(), tt.event)

			require.NoError(t, err)
			require.Equal(t, http.StatusOK, rsp.StatusCode)

			var gotBody functionthree.Response
			require.NoError(t, json.Unmarshal([]byte(rsp.Body), &gotBody))
			assert.Equal(t, "[Function_3] Hello function_three, this is an AWS Lambda HTTP request using controller wrapper to avoid lots of boilerplate", gotBody.Message)
		})
	}
}

func Test_Types_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		decoded interface{}
		expJSON string
	}{
		{
			name:    "Happy path - Response",
			value:   &functionthree.Response{Message: "Hello function_three"},
			decoded: new(functionthree.Response),
			expJSON: `{"message":"Hello function_three"}`,
		},
		{
			name:    "Happy path - ErrorResponse",
			value:   &functionthree.ErrorResponse{Error: "down"},
			decoded: new(functionthree.ErrorResponse),
			expJSON: `{"error":"down"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expJSON, string(data))

			require.NoError(t, json.Unmarshal(data, tt.decoded))
			assert.Equal(t, tt.value, tt.decoded)
		})
	}
}
