package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/fixithub/universe/internal/domain"
)

// IssueRepo provides typed DynamoDB operations for the issues table.
type IssueRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewIssueRepo(client *dynamodb.Client, tableName string) *IssueRepo {
	return &IssueRepo{client: client, tableName: tableName}
}

func (r *IssueRepo) Put(ctx context.Context, i *domain.Issue) error {
	item, err := attributevalue.MarshalMap(i)
	if err != nil {
		return fmt.Errorf("marshal issue: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *IssueRepo) Get(ctx context.Context, issueID string) (*domain.Issue, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("issue_id", issueID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("issue not found: %w", domain.ErrNotFound)
	}
	var i domain.Issue
	if err := attributevalue.UnmarshalMap(out.Item, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

// Scan returns all issues. Paginates through every DynamoDB page; the
// table stays small enough that filtering happens in the service layer.
func (r *IssueRepo) Scan(ctx context.Context) ([]domain.Issue, error) {
	var issues []domain.Issue
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Issue
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		issues = append(issues, page...)
	}
	return issues, nil
}

func (r *IssueRepo) Update(ctx context.Context, issueID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("issue_id", issueID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
