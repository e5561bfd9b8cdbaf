package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultLPUsTableName = "lpus"
	quoteTokenIndexName  = "quote_token-index"
	workIDIndexName      = "work_id-index"
)

// LPUDynamoRepository persists LPU documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI quote_token-index: quote_token (string), sparse (only documents with a live round)
//   - GSI work_id-index: work_id (string)
//
// Whole-document writes are PutItem conditioned on the version that was read; field writes are
// UpdateItem on prices.<item>/quantities.<item> conditioned on status only.
type LPUDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	tracer    trace.Tracer
}

var _ interfaces.ILPURepository = (*LPUDynamoRepository)(nil)

func NewLPUDynamoRepository(ddb *dynamodb.Client) *LPUDynamoRepository {
	return &LPUDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LPUS_TABLE", defaultLPUsTableName),
		tracer:    otel.Tracer("lpu_quotation/repository"),
	}
}

func (r *LPUDynamoRepository) Create(ctx context.Context, l entities.LPU) (_ entities.LPU, err error) {
	ctx, span := r.tracer.Start(ctx, "lpus.create", trace.WithAttributes(attribute.String("lpu.id", l.ID)))
	defer func() { endSpan(span, err) }()

	av, err := attributevalue.MarshalMap(toLPUItem(l))
	if err != nil {
		return entities.LPU{}, err
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
		return entities.LPU{}, err
	}
	return l, nil
}

func (r *LPUDynamoRepository) GetByID(ctx context.Context, id string) (_ entities.LPU, err error) {
	ctx, span := r.tracer.Start(ctx, "lpus.get", trace.WithAttributes(attribute.String("lpu.id", id)))
	defer func() { endSpan(span, err) }()

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LPU{}, err
	}
	if len(out.Item) == 0 {
		return entities.LPU{}, nil
	}
	return unmarshalLPU(out.Item)
}

// GetByQuoteToken resolves the token through the GSI, then re-reads the document consistently
// since index reads may lag.
func (r *LPUDynamoRepository) GetByQuoteToken(ctx context.Context, token string) (_ entities.LPU, err error) {
	ctx, span := r.tracer.Start(ctx, "lpus.get_by_token")
	defer func() { endSpan(span, err) }()

	if token == "" {
		return entities.LPU{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quoteTokenIndexName),
		KeyConditionExpression: aws.String("#quote_token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#quote_token": "quote_token",
			"#id":          "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		ProjectionExpression: aws.String("#id"),
		Limit:                aws.Int32(1),
	})
	if err != nil {
		return entities.LPU{}, err
	}
	if len(out.Items) == 0 {
		return entities.LPU{}, nil
	}

	var key struct {
		ID string `dynamodbav:"id"`
	}
	if err := attributevalue.UnmarshalMap(out.Items[0], &key); err != nil {
		return entities.LPU{}, err
	}
	l, err := r.GetByID(ctx, key.ID)
	if err != nil {
		return entities.LPU{}, err
	}
	if l.QuoteToken != token {
		return entities.LPU{}, nil
	}
	return l, nil
}

func (r *LPUDynamoRepository) List(ctx context.Context, filter interfaces.LPUFilter) (_ []entities.LPU, err error) {
	ctx, span := r.tracer.Start(ctx, "lpus.list", trace.WithAttributes(
		attribute.String("filter.work_id", filter.WorkID),
		attribute.String("filter.status", string(filter.Status)),
	))
	defer func() { endSpan(span, err) }()

	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var filterExpr *string
	if filter.Status != "" {
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		filterExpr = aws.String("#status = :status")
	}

	var items []map[string]types.AttributeValue
	if filter.WorkID != "" {
		names["#work_id"] = "work_id"
		values[":work_id"] = &types.AttributeValueMemberS{Value: filter.WorkID}
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(workIDIndexName),
			KeyConditionExpression:    aws.String("#work_id = :work_id"),
			FilterExpression:          filterExpr,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			items = append(items, page.Items...)
		}
	} else {
		in := &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: filterExpr,
		}
		if filterExpr != nil {
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		p := dynamodb.NewScanPaginator(r.ddb, in)
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			items = append(items, page.Items...)
		}
	}

	out := make([]entities.LPU, 0, len(items))
	for _, av := range items {
		l, err := unmarshalLPU(av)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	span.SetAttributes(attribute.Int("lpus.count", len(out)))
	return out, nil
}

func (r *LPUDynamoRepository) Save(ctx context.Context, l entities.LPU) (_ entities.LPU, err error) {
	ctx, span := r.tracer.Start(ctx, "lpus.save", trace.WithAttributes(
		attribute.String("lpu.id", l.ID),
		attribute.String("lpu.status", string(l.Status)),
		attribute.Int("expected.version", l.Version),
	))
	defer func() { endSpan(span, err) }()

	expected := l.Version
	l.Version = expected + 1
	av, err := attributevalue.MarshalMap(toLPUItem(l))
	if err != nil {
		return entities.LPU{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expected)},
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			span.SetAttributes(attribute.Bool("conflict.detected", true))
			return entities.LPU{}, interfaces.ErrVersionConflict
		}
		return entities.LPU{}, err
	}
	return l, nil
}

func (r *LPUDynamoRepository) UpdateFields(ctx context.Context, id string, upd interfaces.FieldUpdate) (_ entities.LPU, err error) {
	ctx, span := r.tracer.Start(ctx, "lpus.update_fields", trace.WithAttributes(
		attribute.String("lpu.id", id),
		attribute.Int("prices.count", len(upd.Prices)),
		attribute.Int("quantities.count", len(upd.Quantities)),
	))
	defer func() { endSpan(span, err) }()

	now := formatTime(time.Now())
	expr := "SET #version = #version + :one, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#version":    "version",
		"#updated_at": "updated_at",
	}
	itemNames := map[string]string{}
	values := map[string]types.AttributeValue{
		":one":        &types.AttributeValueMemberN{Value: "1"},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}

	i := 0
	for item, price := range upd.Prices {
		n, v := fmt.Sprintf("#p%d", i), fmt.Sprintf(":p%d", i)
		expr += fmt.Sprintf(", #prices.%s = %s", n, v)
		itemNames["#prices"] = "prices"
		itemNames[n] = item
		values[v] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(price, 'f', -1, 64)}
		i++
	}
	i = 0
	for item, qty := range upd.Quantities {
		n, v := fmt.Sprintf("#q%d", i), fmt.Sprintf(":q%d", i)
		expr += fmt.Sprintf(", #quantities.%s = %s", n, v)
		itemNames["#quantities"] = "quantities"
		itemNames[n] = item
		values[v] = &types.AttributeValueMemberN{Value: strconv.Itoa(qty)}
		i++
	}

	cond := "attribute_exists(#id)"
	if upd.RequireStatus != "" {
		cond += " AND #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(upd.RequireStatus)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(expr),
		ExpressionAttributeNames:            mergeNames(names, itemNames),
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionFailed(err); ok {
			if len(cfe.Item) == 0 {
				return entities.LPU{}, nil
			}
			return entities.LPU{}, interfaces.ErrVersionConflict
		}
		return entities.LPU{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LPU{}, nil
	}
	return unmarshalLPU(out.Attributes)
}

func (r *LPUDynamoRepository) Delete(ctx context.Context, id string, expectedVersion int) (err error) {
	ctx, span := r.tracer.Start(ctx, "lpus.delete", trace.WithAttributes(
		attribute.String("lpu.id", id),
		attribute.Int("expected.version", expectedVersion),
	))
	defer func() { endSpan(span, err) }()

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

func unmarshalLPU(av map[string]types.AttributeValue) (entities.LPU, error) {
	var it lpuItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.LPU{}, err
	}
	return fromLPUItem(it), nil
}
