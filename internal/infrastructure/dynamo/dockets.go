package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/fixithub/universe/internal/domain"
)

// DocketRepo provides typed DynamoDB operations for the dockets table.
type DocketRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewDocketRepo(client *dynamodb.Client, tableName string) *DocketRepo {
	return &DocketRepo{client: client, tableName: tableName}
}

func (r *DocketRepo) Put(ctx context.Context, d *domain.Docket) error {
	item, err := attributevalue.MarshalMap(d)
	if err != nil {
		return fmt.Errorf("marshal docket: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *DocketRepo) Get(ctx context.Context, docketID string) (*domain.Docket, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("docket_id", docketID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("docket not found: %w", domain.ErrNotFound)
	}
	var d domain.Docket
	if err := attributevalue.UnmarshalMap(out.Item, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocketRepo) Scan(ctx context.Context) ([]domain.Docket, error) {
	var dockets []domain.Docket
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Docket
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		dockets = append(dockets, page...)
	}
	return dockets, nil
}
