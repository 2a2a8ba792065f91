package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var (
	ErrNotConnected = errors.New("dynamodb client is not connected")
	ErrMissingTable = errors.New("missing table name")
)

// Ensure Client implements ClientIFace
var _ ClientIFace = (*Client)(nil)

type ClientIFace interface {
	Connect() error
	ConnectWithSession(awsSession *session.Session)
	PutItem(ctx context.Context, table string, item interface{}) error
}

type Client struct {
	cfg          *aws.Config
	dynamoClient dynamodbiface.DynamoDBAPI
}

// New builds a client for region. A non-empty endpoint replaces the default
// service endpoint, e.g. to target DynamoDB Local.
func New(endpoint, region string) *Client {
	cfg := aws.NewConfig()
	if region != "" {
		cfg.WithRegion(region)
	}
	if endpoint != "" {
		cfg.WithEndpoint(endpoint)
	}

	return &Client{
		cfg: cfg,
	}
}

func (c *Client) Connect() error {
	awsSession, err := session.NewSession(c.cfg)
	if err != nil {
		return err
	}
	c.ConnectWithSession(awsSession)
	return nil
}

func (c *Client) ConnectWithSession(awsSession *session.Session) {
	c.dynamoClient = dynamodb.New(awsSession, c.cfg)
}

// PutItem marshals item with its dynamodbav tags and writes it to table.
func (c *Client) PutItem(ctx context.Context, table string, item interface{}) error {
	if c.dynamoClient == nil {
		return ErrNotConnected
	}
	if table == "" {
		return ErrMissingTable
	}

	attrs, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		return err
	}

	_, err = c.dynamoClient.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      attrs,
	})
	return err
}
