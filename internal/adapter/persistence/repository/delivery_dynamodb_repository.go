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

type deliveryItem struct {
	IDPedido     string `dynamodbav:"id_pedido"`
	TenantID     string `dynamodbav:"tenant_id"`
	Repartidor   string `dynamodbav:"repartidor"`
	IDRepartidor string `dynamodbav:"id_repartidor"`
	Origen       string `dynamodbav:"origen"`
	Destino      string `dynamodbav:"destino"`
	Status       string `dynamodbav:"status"`
}

// DeliveryDynamoRepository persists delivery work logs.
//
// Table requirements:
//   - PK: id_pedido (string)

type DeliveryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeliveryRepository = (*DeliveryDynamoRepository)(nil)

func NewDeliveryDynamoRepository(ddb *dynamodb.Client, tableName string) *DeliveryDynamoRepository {
	return &DeliveryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DeliveryDynamoRepository) Create(ctx context.Context, rec entities.DeliveryRecord) error {
	av, err := attributevalue.MarshalMap(deliveryItem{
		IDPedido:     rec.IDPedido,
		TenantID:     rec.TenantID,
		Repartidor:   rec.Repartidor,
		IDRepartidor: rec.IDRepartidor,
		Origen:       rec.Origen,
		Destino:      rec.Destino,
		Status:       string(rec.Status),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// MarkDelivered closes the delivery record with its terminal status.
func (r *DeliveryDynamoRepository) MarkDelivered(ctx context.Context, idPedido string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id_pedido": &types.AttributeValueMemberS{Value: idPedido},
		},
		UpdateExpression:    aws.String("SET #status = :status"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#id":     "id_pedido",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.DeliveryStatusCumplido)},
		},
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
