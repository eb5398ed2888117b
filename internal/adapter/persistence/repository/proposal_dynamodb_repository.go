package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultProposalsTableName = "proposals"

// Monetary values are stored as strings to keep decimal precision.
type proposalItem struct {
	ID                string   `dynamodbav:"id"`
	PropertyType      string   `dynamodbav:"property_type"`
	PropertySize      string   `dynamodbav:"property_size"`
	Region            string   `dynamodbav:"region"`
	Budget            string   `dynamodbav:"budget"`
	RequestedServices []string `dynamodbav:"requested_services"`
	Body              string   `dynamodbav:"body"`
	Status            string   `dynamodbav:"status"`
	Model             string   `dynamodbav:"model"`
	TotalCost         string   `dynamodbav:"total_cost"`
	CreatedAt         string   `dynamodbav:"created_at"`
	ValidUntil        string   `dynamodbav:"valid_until,omitempty"`
	ClientName        string   `dynamodbav:"client_name"`
	ClientPhone       string   `dynamodbav:"client_phone"`
	ClientEmail       string   `dynamodbav:"client_email"`
	SiteAnalysis      string   `dynamodbav:"site_analysis,omitempty"`
	ProjectScope      string   `dynamodbav:"project_scope,omitempty"`
	EstimatedDuration string   `dynamodbav:"estimated_duration,omitempty"`
	RequiredPermits   []string `dynamodbav:"required_permits"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProposalDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

// DynamoAPI is the subset of the DynamoDB client used by the repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

// NewProposalDynamoRepository falls back to the default table name when
// tableName is empty.
func NewProposalDynamoRepository(ddb DynamoAPI, tableName string) *ProposalDynamoRepository {
	if tableName == "" {
		tableName = defaultProposalsTableName
	}
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// Update overwrites the mutable fields of an existing proposal.
// It never creates a record.
func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	return r.update(ctx, p.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #property_type = :property_type, #region = :region, #property_size = :property_size, " +
			"#body = :body, #status = :status, #budget = :budget, #client_name = :client_name, " +
			"#client_phone = :client_phone, #client_email = :client_email, #site_analysis = :site_analysis, " +
			"#project_scope = :project_scope, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":property_type": &types.AttributeValueMemberS{Value: it.PropertyType},
			":region":        &types.AttributeValueMemberS{Value: it.Region},
			":property_size": &types.AttributeValueMemberS{Value: it.PropertySize},
			":body":          &types.AttributeValueMemberS{Value: it.Body},
			":status":        &types.AttributeValueMemberS{Value: it.Status},
			":budget":        &types.AttributeValueMemberS{Value: it.Budget},
			":client_name":   &types.AttributeValueMemberS{Value: it.ClientName},
			":client_phone":  &types.AttributeValueMemberS{Value: it.ClientPhone},
			":client_email":  &types.AttributeValueMemberS{Value: it.ClientEmail},
			":site_analysis": &types.AttributeValueMemberS{Value: it.SiteAnalysis},
			":project_scope": &types.AttributeValueMemberS{Value: it.ProjectScope},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#property_type": "property_type",
			"#region":        "region",
			"#property_size": "property_size",
			"#body":          "body",
			"#status":        "status",
			"#budget":        "budget",
			"#client_name":   "client_name",
			"#client_phone":  "client_phone",
			"#client_email":  "client_email",
			"#site_analysis": "site_analysis",
			"#project_scope": "project_scope",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List scans the table; results are ordered newest first.
func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	var (
		out      []entities.Proposal
		startKey map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []proposalItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromProposalItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *ProposalDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		ID:                p.ID,
		PropertyType:      p.PropertyType,
		PropertySize:      p.PropertySize.String(),
		Region:            p.Region,
		Budget:            p.Budget.String(),
		RequestedServices: nonNil(p.RequestedServices),
		Body:              p.Body,
		Status:            string(p.Status),
		Model:             p.Model,
		TotalCost:         p.TotalCost.String(),
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ClientName:        p.ClientName,
		ClientPhone:       p.ClientPhone,
		ClientEmail:       p.ClientEmail,
		SiteAnalysis:      p.SiteAnalysis,
		ProjectScope:      p.ProjectScope,
		RequiredPermits:   nonNil(p.RequiredPermits),
		UpdatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.ValidUntil != nil {
		it.ValidUntil = p.ValidUntil.UTC().Format(time.RFC3339Nano)
	}
	if p.EstimatedDuration != nil {
		it.EstimatedDuration = p.EstimatedDuration.String()
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Proposal{
		ID:                it.ID,
		PropertyType:      it.PropertyType,
		PropertySize:      parseDecimal(it.PropertySize),
		Region:            it.Region,
		Budget:            parseDecimal(it.Budget),
		RequestedServices: it.RequestedServices,
		Body:              it.Body,
		Status:            entities.ProposalStatus(it.Status),
		Model:             it.Model,
		TotalCost:         parseDecimal(it.TotalCost),
		CreatedAt:         createdAt,
		ClientName:        it.ClientName,
		ClientPhone:       it.ClientPhone,
		ClientEmail:       it.ClientEmail,
		SiteAnalysis:      it.SiteAnalysis,
		ProjectScope:      it.ProjectScope,
		RequiredPermits:   it.RequiredPermits,
	}
	if it.ValidUntil != "" {
		if v, err := time.Parse(time.RFC3339Nano, it.ValidUntil); err == nil {
			p.ValidUntil = &v
		}
	}
	if it.EstimatedDuration != "" {
		d := parseDecimal(it.EstimatedDuration)
		p.EstimatedDuration = &d
	}
	return p
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func sortNewestFirst(ps []entities.Proposal) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].CreatedAt.After(ps[j].CreatedAt)
	})
}
