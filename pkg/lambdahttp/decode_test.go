package lambdahttp

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func Test_ParseJSONBody(t *testing.T) {
	tests := []struct {
		name       string
		event      events.APIGatewayV2HTTPRequest
		expReq     *testRequest
		expInvalid bool
	}{
		{
			name:   "Happy path - Text body",
			event:  events.APIGatewayV2HTTPRequest{Body: `{"name":"world","count":2}`},
			expReq: &testRequest{Name: "world", Count: 2},
		},
		{
			name: "Happy path - Binary body",
			event: events.APIGatewayV2HTTPRequest{
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"name":"world","count":2}`)),
				IsBase64Encoded: true,
			},
			expReq: &testRequest{Name: "world", Count: 2},
		},
		{
			name:   "Happy path - Missing fields use zero values",
			event:  events.APIGatewayV2HTTPRequest{Body: `{}`},
			expReq: &testRequest{},
		},
		{
			name:   "Happy path - Field names match case-insensitively",
			event:  events.APIGatewayV2HTTPRequest{Body: `{"NAME":"x"}`},
			expReq: &testRequest{Name: "x"},
		},
		{
			name:  "Happy path - Empty body",
			event: events.APIGatewayV2HTTPRequest{},
		},
		{
			name:  "Happy path - Empty binary body",
			event: events.APIGatewayV2HTTPRequest{IsBase64Encoded: true},
		},
		{
			name:       "Sad path - Not JSON",
			event:      events.APIGatewayV2HTTPRequest{Body: "not-json"},
			expInvalid: true,
		},
		{
			name:       "Sad path - Whitespace body",
			event:      events.APIGatewayV2HTTPRequest{Body: "   "},
			expInvalid: true,
		},
		{
			name:       "Sad path - Null body",
			event:      events.APIGatewayV2HTTPRequest{Body: "null"},
			expInvalid: true,
		},
		{
			name:       "Sad path - Padded null body",
			event:      events.APIGatewayV2HTTPRequest{Body: " null \n"},
			expInvalid: true,
		},
		{
			name: "Sad path - Binary null body",
			event: events.APIGatewayV2HTTPRequest{
				Body:            base64.StdEncoding.EncodeToString([]byte("null")),
				IsBase64Encoded: true,
			},
			expInvalid: true,
		},
		{
			name:       "Sad path - Wrong field type",
			event:      events.APIGatewayV2HTTPRequest{Body: `{"count":"two"}`},
			expInvalid: true,
		},
		{
			name: "Sad path - Bad base64",
			event: events.APIGatewayV2HTTPRequest{
				Body:            "!@#$%^&*()",
				IsBase64Encoded: true,
			},
			expInvalid: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rsp := ParseJSONBody[testRequest](tt.event)

			if tt.expInvalid {
				assert.Nil(t, req)
				require.NotNil(t, rsp)
				assert.Equal(t, http.StatusBadRequest, rsp.StatusCode)
				assert.JSONEq(t, `{"error":"Invalid JSON request body"}`, rsp.Body)
				assert.Equal(t, ContentTypeJSON, rsp.Headers[ContentTypeHeader])
				return
			}

			assert.Nil(t, rsp)
			assert.Equal(t, tt.expReq, req)
		})
	}
}

func Test_ParseJSONBody_TextAndBinaryMatch(t *testing.T) {
	body := `{"name":"tëst","count":7}`

	textReq, rsp := ParseJSONBody[testRequest](events.APIGatewayV2HTTPRequest{Body: body})
	require.Nil(t, rsp)

	binReq, rsp := ParseJSONBody[testRequest](events.APIGatewayV2HTTPRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(body)),
		IsBase64Encoded: true,
	})
	require.Nil(t, rsp)

	assert.Equal(t, textReq, binReq)
}

func Test_CannedResponses(t *testing.T) {
	rsp := emptyBodyResponse()
	assert.Equal(t, http.StatusBadRequest, rsp.StatusCode)
	assert.JSONEq(t, `{"error":"Expected JSON body, got empty body"}`, rsp.Body)

	// Each response gets its own header map
	rsp.Headers["X-Test"] = "mutated"
	assert.NotContains(t, emptyBodyResponse().Headers, "X-Test")
	assert.NotContains(t, invalidJSONResponse().Headers, "X-Test")
}
