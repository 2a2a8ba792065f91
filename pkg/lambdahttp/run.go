package lambdahttp

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"lambda-functions/pkg/httpserver"
)

const loggerName = "lambda-http"

var (
	initOnce sync.Once

	// Overridden in tests
	startLambda = lambda.Start
	serveLocal  = httpserver.Run
)

// Options configures the run entry points.
type Options struct {
	Logger *zap.Logger

	// Local serves the handler over plain HTTP on LocalPort instead of
	// registering it with the Lambda runtime.
	Local     bool
	LocalPort string
}

// Run wraps the controller with Wrap and hands it to the Lambda runtime,
// blocking until the runtime exits.
func Run[TReq, TResp, TErr any](opts Options, controller func(ctx context.Context, req TReq) (TResp, *TErr)) error {
	logger := initLogging(opts.Logger)
	return start(opts, logger, Wrap(logger, controller))
}

// RunNoInput is Run for controllers without input.
func RunNoInput[TResp, TErr any](opts Options, controller func(ctx context.Context) (TResp, *TErr)) error {
	logger := initLogging(opts.Logger)
	return start(opts, logger, WrapNoInput(logger, controller))
}

// RunDirect registers handler with the Lambda runtime as is, without the HTTP
// adapter. handler must have a signature accepted by lambda.Start.
func RunDirect(opts Options, handler interface{}) {
	logger := initLogging(opts.Logger)
	logger.Info("starting lambda runtime")
	startLambda(handler)
}

func start(opts Options, logger *zap.Logger, handler Handler) error {
	if !opts.Local {
		logger.Info("starting lambda runtime")
		startLambda(handler)
		return nil
	}

	logger.Info("serving locally", zap.String("port", opts.LocalPort))
	return serveLocal(logger, opts.LocalPort, httpserver.EventHandler(handler))
}

// initLogging installs the process-wide logger once and returns the adapter's
// named logger.
func initLogging(logger *zap.Logger) *zap.Logger {
	logger = orNop(logger)
	initOnce.Do(func() {
		zap.ReplaceGlobals(logger)
		zap.RedirectStdLog(logger)
	})
	return logger.Named(loggerName)
}
