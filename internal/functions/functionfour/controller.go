package functionfour

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lambda-functions/internal/config"
	"lambda-functions/pkg/aws/dynamodb"
)

const (
	DefaultName = "world"

	loggerName = "function-four"

	messageFormat = "[Function_4] Hello %s, this is an AWS Lambda HTTP request using controller wrapper to avoid lots of boilerplate"
)

var recordFailedResponse = ErrorResponse{Error: "could not record greeting"}

type Controller struct {
	logger *zap.Logger

	// Greetings are only recorded when a table is configured
	table string
	store dynamodb.ClientIFace

	now func() time.Time
}

func New(cfg *config.Config) *Controller {
	return &Controller{
		logger: cfg.Logger.Named(loggerName),
		table:  cfg.DynamoDB.Table,
		store:  dynamodb.New(cfg.DynamoDB.Endpoint, cfg.DynamoDB.Region),
		now:    time.Now,
	}
}

// Connect opens the DynamoDB session. It must be called once before Handle
// when a table is configured.
func (c *Controller) Connect() error {
	if c.table == "" {
		c.logger.Info("no greetings table configured, greetings will not be recorded")
		return nil
	}
	return c.store.Connect()
}

// Handle greets the requested name, defaulting to "world", and records the
// greeting when a table is configured.
func (c *Controller) Handle(ctx context.Context, req Request) (Response, *ErrorResponse) {
	name := req.Name
	if name == "" {
		name = DefaultName
	}
	rsp := Response{
		Message: fmt.Sprintf(messageFormat, name),
	}

	if c.table == "" {
		return rsp, nil
	}

	record := greeting{
		ID:        uuid.NewString(),
		Name:      name,
		Message:   rsp.Message,
		CreatedAt: c.now().UTC(),
	}
	if err := c.store.PutItem(ctx, c.table, record); err != nil {
		c.logger.Error("could not record greeting", zap.Error(err), zap.String("table", c.table))
		errRsp := recordFailedResponse
		return Response{}, &errRsp
	}

	c.logger.Info("recorded greeting", zap.String("id", record.ID))
	return rsp, nil
}
