package store

import (
	"context"
	"fmt"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// DynamoStore persists submissions in a DynamoDB table keyed by submissionId.
// This is the store used in Lambda deployments.
type DynamoStore struct {
	db     *dynamodb.Client
	table  string
	logger *logrus.Logger
}

// DynamoConfig holds the settings for a DynamoDB-backed store
type DynamoConfig struct {
	Table    string
	Region   string
	Endpoint string // optional custom endpoint, e.g. http://localstack:4566
}

// NewDynamoStore loads AWS configuration and creates a DynamoDB-backed store
func NewDynamoStore(ctx context.Context, cfg DynamoConfig, logger *logrus.Logger) (*DynamoStore, error) {
	if logger == nil {
		logger = logrus.New()
	}
	if cfg.Table == "" {
		return nil, fmt.Errorf("dynamo store requires a table name")
	}

	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(cfg.Region)}
	if cfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				HostnameImmutable: true,
				PartitionID:       "aws",
			}, nil
		})
		opts = append(opts, awsCfg.WithEndpointResolverWithOptions(resolver))
	}

	awsConf, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"table":  cfg.Table,
		"region": cfg.Region,
	}).Info("DynamoDB store initialized")

	return &DynamoStore{
		db:     dynamodb.NewFromConfig(awsConf),
		table:  cfg.Table,
		logger: logger,
	}, nil
}

// Put implements RecordStore.Put
func (s *DynamoStore) Put(ctx context.Context, sub *models.Submission) error {
	if sub == nil || sub.ID == "" {
		return NewStoreError("Put", "", ErrInvalidRecord)
	}

	item, err := attributevalue.MarshalMap(sub)
	if err != nil {
		return NewStoreError("Put", sub.ID, err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		s.logger.WithError(err).WithField("submission_id", sub.ID).Error("DynamoDB PutItem failed")
		return NewStoreError("Put", sub.ID, err)
	}
	return nil
}

// Get implements RecordStore.Get
func (s *DynamoStore) Get(ctx context.Context, id string) (*models.Submission, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"submissionId": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		s.logger.WithError(err).WithField("submission_id", id).Error("DynamoDB GetItem failed")
		return nil, NewStoreError("Get", id, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var sub models.Submission
	if err := attributevalue.UnmarshalMap(out.Item, &sub); err != nil {
		return nil, NewStoreError("Get", id, err)
	}
	return &sub, nil
}

// ScanAll implements RecordStore.ScanAll. The scan follows LastEvaluatedKey
// until the table is exhausted, so results are complete but unordered.
func (s *DynamoStore) ScanAll(ctx context.Context) ([]*models.Submission, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.db.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			s.logger.WithError(err).Error("DynamoDB Scan failed")
			return nil, NewStoreError("ScanAll", "", err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	var subs []*models.Submission
	if err := attributevalue.UnmarshalListOfMaps(items, &subs); err != nil {
		return nil, NewStoreError("ScanAll", "", err)
	}
	return subs, nil
}

// Close implements RecordStore.Close
func (s *DynamoStore) Close() error {
	return nil
}
