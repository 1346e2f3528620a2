package repository

import (
	"context"
	"errors"

	"estado_pedidos/internal/domain/entities"
	"estado_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type pedidoItem struct {
	TenantID string `dynamodbav:"tenant_id"`
	ID       string `dynamodbav:"id"`
	Estado   string `dynamodbav:"estado_pedido"`

	TaskTokenCocina          string `dynamodbav:"task_token_cocina,omitempty"`
	TaskTokenEmpaquetamiento string `dynamodbav:"task_token_empaquetamiento,omitempty"`
	TaskTokenDelivery        string `dynamodbav:"task_token_delivery,omitempty"`
}

// PedidoDynamoRepository persists Pedido entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (HASH) + id (RANGE)
//
// The pedido item itself is created by the upstream order/payment process;
// this repository only reads it and mutates estado_pedido and the task
// token attributes.

type PedidoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPedidoRepository = (*PedidoDynamoRepository)(nil)

func NewPedidoDynamoRepository(ddb *dynamodb.Client, tableName string) *PedidoDynamoRepository {
	return &PedidoDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PedidoDynamoRepository) GetByID(ctx context.Context, tenantID, idPedido string) (entities.Pedido, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            pedidoKey(tenantID, idPedido),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pedido{}, nil
	}

	var it pedidoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoItem(it), nil
}

// UpdateEstado moves estado_pedido from expected to next in a single
// conditional write, so two racing transitions out of the same state cannot
// both succeed. When tokenField is non-empty the continuation token is
// stored in the same write.
func (r *PedidoDynamoRepository) UpdateEstado(ctx context.Context, tenantID, idPedido string, expected, next entities.OrderState, tokenField, token string) (bool, error) {
	updateExpr := "SET #estado = :next"
	names := map[string]string{"#estado": "estado_pedido"}
	values := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(next)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
	}
	if tokenField != "" {
		updateExpr += ", #token = :token"
		names["#token"] = tokenField
		values[":token"] = &types.AttributeValueMemberS{Value: token}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       pedidoKey(tenantID, idPedido),
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("#estado = :expected"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
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

// RemoveTaskToken deletes the given token attribute. Removing an already
// absent token is not an error.
func (r *PedidoDynamoRepository) RemoveTaskToken(ctx context.Context, tenantID, idPedido, tokenField string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      pedidoKey(tenantID, idPedido),
		UpdateExpression:         aws.String("REMOVE #token"),
		ConditionExpression:      aws.String("attribute_exists(#token)"),
		ExpressionAttributeNames: map[string]string{"#token": tokenField},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func pedidoKey(tenantID, idPedido string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		"id":        &types.AttributeValueMemberS{Value: idPedido},
	}
}

func fromPedidoItem(it pedidoItem) entities.Pedido {
	return entities.Pedido{
		TenantID:                 it.TenantID,
		ID:                       it.ID,
		Estado:                   entities.OrderState(it.Estado),
		TaskTokenCocina:          it.TaskTokenCocina,
		TaskTokenEmpaquetamiento: it.TaskTokenEmpaquetamiento,
		TaskTokenDelivery:        it.TaskTokenDelivery,
	}
}
