package lambdahttp

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Handler is the signature registered with the Lambda runtime for API Gateway
// HTTP API events.
type Handler func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// Wrap adapts a controller taking a TReq into a Handler.
//
// The event body is decoded as JSON into a TReq and passed to the controller,
// whose result is encoded with ResultToResponse. Empty and malformed bodies are
// answered with a 400 without calling the controller.
func Wrap[TReq, TResp, TErr any](logger *zap.Logger, controller func(ctx context.Context, req TReq) (TResp, *TErr)) Handler {
	logger = orNop(logger)
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		req, errRsp := ParseJSONBody[TReq](event)
		if errRsp != nil {
			logger.Warn("rejected request body", zap.String("reason", InvalidJSONError.Error))
			return *errRsp, nil
		}
		if req == nil {
			logger.Warn("rejected request body", zap.String("reason", EmptyBodyError.Error))
			return emptyBodyResponse(), nil
		}

		rsp, failure := controller(ctx, *req)
		return encodeResult(logger, rsp, failure)
	}
}

// WrapNoInput adapts a controller without input into a Handler. The event
// body is never read.
func WrapNoInput[TResp, TErr any](logger *zap.Logger, controller func(ctx context.Context) (TResp, *TErr)) Handler {
	logger = orNop(logger)
	return func(ctx context.Context, _ events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		rsp, failure := controller(ctx)
		return encodeResult(logger, rsp, failure)
	}
}

func encodeResult[TResp, TErr any](logger *zap.Logger, rsp TResp, failure *TErr) (events.APIGatewayV2HTTPResponse, error) {
	out, err := ResultToResponse(rsp, failure)
	if err != nil {
		logger.Error("could not encode controller result", zap.Error(err))
		return out, err
	}
	if failure != nil {
		logger.Info("controller reported failure", zap.Int("status", out.StatusCode))
	}
	return out, nil
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
