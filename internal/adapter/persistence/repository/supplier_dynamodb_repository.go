package repository

import (
	"context"
	"sort"

	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSuppliersTableName = "suppliers"
	suppliersTaxIDIndex       = "tax_id-index"
)

type supplierItem struct {
	ID           string `dynamodbav:"id"`
	SocialReason string `dynamodbav:"social_reason"`
	TaxID        string `dynamodbav:"tax_id"`
	Email        string `dynamodbav:"email,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// SupplierDynamoRepository persists the supplier directory in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tax_id-index (PK: tax_id, digits only)
type SupplierDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISupplierDirectory = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb *dynamodb.Client) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName),
	}
}

func (r *SupplierDynamoRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	av, err := attributevalue.MarshalMap(toSupplierItem(s))
	if err != nil {
		return entities.Supplier{}, err
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
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Supplier{}, nil
	}

	var it supplierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

func (r *SupplierDynamoRepository) GetByTaxID(ctx context.Context, taxID string) (entities.Supplier, error) {
	if taxID == "" {
		return entities.Supplier{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(suppliersTaxIDIndex),
		KeyConditionExpression: aws.String("#tax_id = :tax_id"),
		ExpressionAttributeNames: map[string]string{
			"#tax_id": "tax_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tax_id": &types.AttributeValueMemberS{Value: taxID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	if len(out.Items) == 0 {
		return entities.Supplier{}, nil
	}

	var it supplierItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	var items []supplierItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []supplierItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	res := make([]entities.Supplier, 0, len(items))
	for _, it := range items {
		res = append(res, fromSupplierItem(it))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].SocialReason < res[j].SocialReason })
	return res, nil
}

func toSupplierItem(s entities.Supplier) supplierItem {
	return supplierItem{
		ID:           s.ID,
		SocialReason: s.SocialReason,
		TaxID:        entities.NormalizeTaxID(s.TaxID),
		Email:        s.Email,
		CreatedAt:    formatTime(s.CreatedAt),
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	return entities.Supplier{
		ID:           it.ID,
		SocialReason: it.SocialReason,
		TaxID:        entities.NormalizeTaxID(it.TaxID),
		Email:        it.Email,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
