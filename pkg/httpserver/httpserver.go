package httpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

const DefaultPort = "8080"

// EventHandler handles a single API Gateway HTTP API event.
type EventHandler func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// Run serves handler on every path until the server fails.
func Run(logger *zap.Logger, port string, handler EventHandler) error {
	if port == "" {
		port = DefaultPort
	}

	// Register endpoints
	mux := http.NewServeMux()
	mux.Handle("/", NewHandler(logger, handler))

	// Start listening for requests
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), mux)
	if err != nil && errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// NewHandler adapts handler into an http.Handler by converting each request
// into an event and writing back the event response.
func NewHandler(logger *zap.Logger, handler EventHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := toEvent(r)
		if err != nil {
			logger.Error("could not read request", zap.Error(err))
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		rsp, err := handler(r.Context(), event)
		if err != nil {
			logger.Error("handler failed", zap.Error(err), zap.String("path", r.URL.Path))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := writeResponse(rsp, w); err != nil {
			logger.Error("could not write response", zap.Error(err))
		}
	})
}

func toEvent(r *http.Request) (events.APIGatewayV2HTTPRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayV2HTTPRequest{}, err
	}

	// Flatten headers the way API Gateway does
	headers := make(map[string]string, len(r.Header))
	for key, vals := range r.Header {
		headers[strings.ToLower(key)] = strings.Join(vals, ",")
	}

	var query map[string]string
	if values := r.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		for key, vals := range values {
			query[key] = strings.Join(vals, ",")
		}
	}

	event := events.APIGatewayV2HTTPRequest{
		Version:               "2.0",
		RouteKey:              "$default",
		RawPath:               r.URL.Path,
		RawQueryString:        r.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: query,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RouteKey:  "$default",
			Stage:     "$default",
			TimeEpoch: time.Now().UnixMilli(),
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    r.Method,
				Path:      r.URL.Path,
				Protocol:  r.Proto,
				SourceIP:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
			},
		},
	}

	// Non UTF-8 bodies are passed on base64 encoded
	if utf8.Valid(body) {
		event.Body = string(body)
	} else {
		event.Body = base64.StdEncoding.EncodeToString(body)
		event.IsBase64Encoded = true
	}

	return event, nil
}

func writeResponse(rsp events.APIGatewayV2HTTPResponse, w http.ResponseWriter) error {
	body := []byte(rsp.Body)
	if rsp.IsBase64Encoded {
		var err error
		if body, err = base64.StdEncoding.DecodeString(rsp.Body); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return err
		}
	}

	for key, val := range rsp.Headers {
		w.Header().Set(key, val)
	}
	for key, vals := range rsp.MultiValueHeaders {
		for _, val := range vals {
			w.Header().Add(key, val)
		}
	}

	status := rsp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	_, err := w.Write(body)
	return err
}
