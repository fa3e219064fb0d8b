package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLaunchesTableName = "launches"

	// dayLayout is the storage format for the operator-entered dates. The
	// historical records keep them as plain day strings, empty when unset.
	dayLayout = "2006-01-02"
)

type workEntryItem struct {
	Date        string  `dynamodbav:"date"`
	Hours       float64 `dynamodbav:"hours"`
	Description string  `dynamodbav:"description,omitempty"`
}

type installmentItem struct {
	Number     int    `dynamodbav:"number"`
	DueDate    string `dynamodbav:"due_date"`
	BaseValue  string `dynamodbav:"base_value"`
	Interest   string `dynamodbav:"interest"`
	FinalValue string `dynamodbav:"final_value"`
	Status     string `dynamodbav:"status"`
}

type installmentPlanItem struct {
	PaymentMethod    string            `dynamodbav:"payment_method"`
	InstallmentCount int               `dynamodbav:"installment_count"`
	FirstDueDate     string            `dynamodbav:"first_due_date"`
	Installments     []installmentItem `dynamodbav:"installments"`
}

type launchItem struct {
	ID            string               `dynamodbav:"id"`
	Customer      string               `dynamodbav:"customer"`
	Business      string               `dynamodbav:"business,omitempty"`
	Description   string               `dynamodbav:"description,omitempty"`
	Status        string               `dynamodbav:"status"`
	Reason        string               `dynamodbav:"reason,omitempty"`
	Deposit       string               `dynamodbav:"deposit"`
	Expenses      string               `dynamodbav:"expenses"`
	PercExpenses  string               `dynamodbav:"perc_expenses"`
	Profit        string               `dynamodbav:"profit"`
	Discount      string               `dynamodbav:"discount"`
	NetProfit     string               `dynamodbav:"net_profit"`
	Request       string               `dynamodbav:"request"`
	Delivery      string               `dynamodbav:"delivery"`
	ProcessedDate string               `dynamodbav:"processed_date"`
	Plan          *installmentPlanItem `dynamodbav:"installment_plan,omitempty"`
	WorkHistory   []workEntryItem      `dynamodbav:"work_history,omitempty"`
	CreatedAt     string               `dynamodbav:"created_at"`
	UpdatedAt     string               `dynamodbav:"updated_at"`
}

// LaunchDynamoRepository persists Launch entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Money fields are stored as strings to keep the exact decimal text the
// historical records carry. Operator dates are day strings, empty when the
// field was never filled.

type LaunchDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILaunchRepository = (*LaunchDynamoRepository)(nil)

func NewLaunchDynamoRepository(ddb *dynamodb.Client) *LaunchDynamoRepository {
	return &LaunchDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LAUNCHES_TABLE", defaultLaunchesTableName),
	}
}

func (r *LaunchDynamoRepository) Create(ctx context.Context, l entities.Launch) (entities.Launch, error) {
	it := toLaunchItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Launch{}, err
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
			return entities.Launch{}, interfaces.ErrDuplicateID
		}
		return entities.Launch{}, err
	}
	return l, nil
}

func (r *LaunchDynamoRepository) Put(ctx context.Context, l entities.Launch) (entities.Launch, error) {
	it := toLaunchItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Launch{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Launch{}, err
	}
	return l, nil
}

func (r *LaunchDynamoRepository) GetByID(ctx context.Context, id string) (entities.Launch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Launch{}, err
	}
	if len(out.Item) == 0 {
		return entities.Launch{}, nil
	}

	var it launchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Launch{}, err
	}
	return fromLaunchItem(it), nil
}

// ListAll scans the whole table. The collection is operator-sized, a few
// hundred records at most, so a paginated scan stays cheap.
func (r *LaunchDynamoRepository) ListAll(ctx context.Context) ([]entities.Launch, error) {
	var launches []entities.Launch
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
			var it launchItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			launches = append(launches, fromLaunchItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return launches, nil
}

func (r *LaunchDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *LaunchDynamoRepository) SetProcessedDate(ctx context.Context, id string, processed time.Time) (entities.Launch, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #processed_date = :processed_date, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":processed_date": &types.AttributeValueMemberS{Value: dayToString(processed)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#processed_date": "processed_date",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LaunchDynamoRepository) SetInstallmentPlan(ctx context.Context, id string, plan *entities.InstallmentPlan) (entities.Launch, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{
			"#installment_plan": "installment_plan",
			"#updated_at":       "updated_at",
		}
		if plan == nil {
			expr := "REMOVE #installment_plan SET #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			return expr, vals, names
		}

		av, err := attributevalue.Marshal(toInstallmentPlanItem(plan))
		if err != nil {
			av = &types.AttributeValueMemberNULL{Value: true}
		}
		expr := "SET #installment_plan = :installment_plan, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":installment_plan": av,
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		return expr, vals, names
	})
}

func (r *LaunchDynamoRepository) SetWorkHistory(ctx context.Context, id string, entries []entities.WorkEntry) (entities.Launch, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		items := make([]workEntryItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, workEntryItem{
				Date:        dayToString(e.Date),
				Hours:       e.Hours,
				Description: e.Description,
			})
		}
		av, err := attributevalue.Marshal(items)
		if err != nil {
			av = &types.AttributeValueMemberL{}
		}

		expr := "SET #work_history = :work_history, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":work_history": av,
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#work_history": "work_history",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LaunchDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Launch, error) {
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
			return entities.Launch{}, nil
		}
		return entities.Launch{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Launch{}, nil
	}
	var it launchItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Launch{}, err
	}
	return fromLaunchItem(it), nil
}

func toLaunchItem(l entities.Launch) launchItem {
	return launchItem{
		ID:            l.ID,
		Customer:      l.Customer,
		Business:      l.Business,
		Description:   l.Description,
		Status:        string(l.Status),
		Reason:        l.Reason,
		Deposit:       floatToString(l.Deposit),
		Expenses:      floatToString(l.Expenses),
		PercExpenses:  floatToString(l.PercExpenses),
		Profit:        floatToString(l.Profit),
		Discount:      floatToString(l.Discount),
		NetProfit:     floatToString(l.NetProfit),
		Request:       dayToString(l.Request),
		Delivery:      dayToString(l.Delivery),
		ProcessedDate: dayToString(l.ProcessedDate),
		Plan:          toInstallmentPlanItem(l.Plan),
		WorkHistory:   toWorkEntryItems(l.WorkHistory),
		CreatedAt:     l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLaunchItem(it launchItem) entities.Launch {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Launch{
		ID:            it.ID,
		Customer:      it.Customer,
		Business:      it.Business,
		Description:   it.Description,
		Status:        entities.LaunchStatus(it.Status),
		Reason:        it.Reason,
		Deposit:       stringToFloat(it.Deposit),
		Expenses:      stringToFloat(it.Expenses),
		PercExpenses:  stringToFloat(it.PercExpenses),
		Profit:        stringToFloat(it.Profit),
		Discount:      stringToFloat(it.Discount),
		NetProfit:     stringToFloat(it.NetProfit),
		Request:       dayFromString(it.Request),
		Delivery:      dayFromString(it.Delivery),
		ProcessedDate: dayFromString(it.ProcessedDate),
		Plan:          fromInstallmentPlanItem(it.Plan),
		WorkHistory:   fromWorkEntryItems(it.WorkHistory),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func toInstallmentPlanItem(p *entities.InstallmentPlan) *installmentPlanItem {
	if p == nil {
		return nil
	}
	installments := make([]installmentItem, 0, len(p.Installments))
	for _, ins := range p.Installments {
		installments = append(installments, installmentItem{
			Number:     ins.Number,
			DueDate:    dayToString(ins.DueDate),
			BaseValue:  floatToString(ins.BaseValue),
			Interest:   floatToString(ins.Interest),
			FinalValue: floatToString(ins.FinalValue),
			Status:     string(ins.Status),
		})
	}
	return &installmentPlanItem{
		PaymentMethod:    string(p.PaymentMethod),
		InstallmentCount: p.InstallmentCount,
		FirstDueDate:     dayToString(p.FirstDueDate),
		Installments:     installments,
	}
}

func fromInstallmentPlanItem(it *installmentPlanItem) *entities.InstallmentPlan {
	if it == nil {
		return nil
	}
	installments := make([]entities.Installment, 0, len(it.Installments))
	for _, ins := range it.Installments {
		installments = append(installments, entities.Installment{
			Number:     ins.Number,
			DueDate:    dayFromString(ins.DueDate),
			BaseValue:  stringToFloat(ins.BaseValue),
			Interest:   stringToFloat(ins.Interest),
			FinalValue: stringToFloat(ins.FinalValue),
			Status:     entities.InstallmentStatus(ins.Status),
		})
	}
	return &entities.InstallmentPlan{
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		InstallmentCount: it.InstallmentCount,
		FirstDueDate:     dayFromString(it.FirstDueDate),
		Installments:     installments,
	}
}

func toWorkEntryItems(entries []entities.WorkEntry) []workEntryItem {
	if len(entries) == 0 {
		return nil
	}
	items := make([]workEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, workEntryItem{
			Date:        dayToString(e.Date),
			Hours:       e.Hours,
			Description: e.Description,
		})
	}
	return items
}

func fromWorkEntryItems(items []workEntryItem) []entities.WorkEntry {
	if len(items) == 0 {
		return nil
	}
	entries := make([]entities.WorkEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, entities.WorkEntry{
			Date:        dayFromString(it.Date),
			Hours:       it.Hours,
			Description: it.Description,
		})
	}
	return entries
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func dayToString(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.UTC().Format(dayLayout)
}

func dayFromString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, _ := time.Parse(dayLayout, s)
	return d
}
