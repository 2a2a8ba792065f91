package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	customError "lambda-functions/pkg/errors"
	"lambda-functions/pkg/httpserver"
	"lambda-functions/pkg/lambdahttp"
)

const (
	EnvDynamoDBEndpoint = "DYNAMODB_ENDPOINT"
	EnvGreetingsTable   = "GREETINGS_TABLE"
	EnvRegion           = "AWS_REGION"
	EnvLocalPort        = "LOCAL_PORT"
	EnvRuntimeAPI       = "AWS_LAMBDA_RUNTIME_API"

	dotEnvFile = ".env"
)

// Config is loaded once at process start and passed to every component that
// needs it.
type Config struct {
	Logger *zap.Logger

	DynamoDB DynamoDBConfig

	// InLambda is set when the Lambda runtime API is available
	InLambda  bool
	LocalPort string
}

type DynamoDBConfig struct {
	// Optional alternate endpoint, e.g. DynamoDB Local
	Endpoint string
	Table    string
	Region   string
}

func New() *Config {
	return &Config{
		Logger:    NewLogger(),
		LocalPort: httpserver.DefaultPort,
	}
}

func NewLogger() *zap.Logger {
	logCfg := zap.NewProductionConfig()
	logCfg.DisableStacktrace = true
	logger, _ := logCfg.Build()
	return logger
}

func (c *Config) Load() error {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return err
	}

	c.InLambda = os.Getenv(EnvRuntimeAPI) != ""
	if port, ok := os.LookupEnv(EnvLocalPort); ok {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return fmt.Errorf("invalid local port: [%s]", port)
		}
		c.LocalPort = port
	}

	return c.loadDynamoDBConfig()
}

// RunOptions returns the options for the lambdahttp run entry points.
func (c *Config) RunOptions() lambdahttp.Options {
	return lambdahttp.Options{
		Logger:    c.Logger,
		Local:     !c.InLambda,
		LocalPort: c.LocalPort,
	}
}

func (c *Config) loadDynamoDBConfig() error {
	c.DynamoDB = DynamoDBConfig{
		Endpoint: os.Getenv(EnvDynamoDBEndpoint),
		Table:    os.Getenv(EnvGreetingsTable),
		Region:   os.Getenv(EnvRegion),
	}

	// The SDK cannot resolve any endpoint without a region
	if (c.DynamoDB.Endpoint != "" || c.DynamoDB.Table != "") && c.DynamoDB.Region == "" {
		return customError.MissingEnvErr{EnvMap: map[string]string{
			EnvRegion: c.DynamoDB.Region,
		}}
	}
	return nil
}

// loadDotEnv sets variables from an env file when it exists. Variables
// already present in the environment win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load %s: %w", path, err)
	}
	return nil
}
