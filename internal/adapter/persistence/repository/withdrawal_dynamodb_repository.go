package repository

import (
	"context"
	"errors"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWithdrawalsTableName = "withdrawals"

type withdrawalItem struct {
	ID             string `dynamodbav:"id"`
	Description    string `dynamodbav:"description"`
	Amount         string `dynamodbav:"amount"`
	WithdrawalDate string `dynamodbav:"withdrawal_date"`
	Category       string `dynamodbav:"category"`
	Method         string `dynamodbav:"method"`
	Notes          string `dynamodbav:"notes,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// WithdrawalDynamoRepository persists Withdrawal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WithdrawalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWithdrawalRepository = (*WithdrawalDynamoRepository)(nil)

func NewWithdrawalDynamoRepository(ddb *dynamodb.Client) *WithdrawalDynamoRepository {
	return &WithdrawalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WITHDRAWALS_TABLE", defaultWithdrawalsTableName),
	}
}

func (r *WithdrawalDynamoRepository) Create(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
	it := toWithdrawalItem(w)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Withdrawal{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Withdrawal{}, interfaces.ErrDuplicateID
		}
		return entities.Withdrawal{}, err
	}
	return w, nil
}

func (r *WithdrawalDynamoRepository) Put(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
	it := toWithdrawalItem(w)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Withdrawal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Withdrawal{}, err
	}
	return w, nil
}

func (r *WithdrawalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Withdrawal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Withdrawal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Withdrawal{}, nil
	}

	var it withdrawalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Withdrawal{}, err
	}
	return fromWithdrawalItem(it), nil
}

func (r *WithdrawalDynamoRepository) ListAll(ctx context.Context) ([]entities.Withdrawal, error) {
	var withdrawals []entities.Withdrawal
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it withdrawalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			withdrawals = append(withdrawals, fromWithdrawalItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return withdrawals, nil
}

func (r *WithdrawalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toWithdrawalItem(w entities.Withdrawal) withdrawalItem {
	return withdrawalItem{
		ID:             w.ID,
		Description:    w.Description,
		Amount:         floatToString(w.Amount),
		WithdrawalDate: dayToString(w.WithdrawalDate),
		Category:       string(w.Category),
		Method:         string(w.Method),
		Notes:          w.Notes,
		CreatedAt:      w.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWithdrawalItem(it withdrawalItem) entities.Withdrawal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Withdrawal{
		ID:             it.ID,
		Description:    it.Description,
		Amount:         stringToFloat(it.Amount),
		WithdrawalDate: dayFromString(it.WithdrawalDate),
		Category:       entities.WithdrawalCategory(it.Category),
		Method:         entities.WithdrawalMethod(it.Method),
		Notes:          it.Notes,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
