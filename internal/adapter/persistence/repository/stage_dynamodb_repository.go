package repository

import (
	"context"
	"errors"
	"time"

	"estado_pedidos/internal/domain/entities"
	"estado_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type stageItem struct {
	IDPedido     string  `dynamodbav:"id_pedido"`
	IDEmpleado   string  `dynamodbav:"id_empleado"`
	HoraComienzo string  `dynamodbav:"hora_comienzo"`
	HoraFin      *string `dynamodbav:"hora_fin"`
	Status       string  `dynamodbav:"status"`
}

// StageDynamoRepository persists stage work logs. COCINA and DESPACHADOR
// share the schema, so the same type serves both with a different table
// name.
//
// Table requirements:
//   - PK: id_pedido (string)

type StageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStageRepository = (*StageDynamoRepository)(nil)

func NewStageDynamoRepository(ddb *dynamodb.Client, tableName string) *StageDynamoRepository {
	return &StageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *StageDynamoRepository) Create(ctx context.Context, rec entities.StageRecord) error {
	av, err := attributevalue.MarshalMap(toStageItem(rec))
	if err != nil {
		return err
	}

	// Re-running a transition overwrites the stage record rather than
	// failing, matching the at-least-once delivery of the orchestrator.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// Close stamps hora_fin and moves the record to "done". A missing record
// yields the zero value rather than an error.
func (r *StageDynamoRepository) Close(ctx context.Context, idPedido string) (entities.StageRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id_pedido": &types.AttributeValueMemberS{Value: idPedido},
		},
		UpdateExpression:    aws.String("SET #hora_fin = :hf, #status = :status"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#hora_fin": "hora_fin",
			"#status":   "status",
			"#id":       "id_pedido",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hf":     &types.AttributeValueMemberS{Value: now},
			":status": &types.AttributeValueMemberS{Value: string(entities.StageStatusDone)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StageRecord{}, nil
		}
		return entities.StageRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.StageRecord{}, nil
	}

	var it stageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StageRecord{}, err
	}
	return fromStageItem(it), nil
}

func toStageItem(rec entities.StageRecord) stageItem {
	it := stageItem{
		IDPedido:     rec.IDPedido,
		IDEmpleado:   rec.IDEmpleado,
		HoraComienzo: rec.HoraComienzo.UTC().Format(time.RFC3339Nano),
		Status:       string(rec.Status),
	}
	if rec.HoraFin != nil {
		hf := rec.HoraFin.UTC().Format(time.RFC3339Nano)
		it.HoraFin = &hf
	}
	return it
}

func fromStageItem(it stageItem) entities.StageRecord {
	comienzo, _ := time.Parse(time.RFC3339Nano, it.HoraComienzo)
	rec := entities.StageRecord{
		IDPedido:     it.IDPedido,
		IDEmpleado:   it.IDEmpleado,
		HoraComienzo: comienzo,
		Status:       entities.StageStatus(it.Status),
	}
	if it.HoraFin != nil {
		if fin, err := time.Parse(time.RFC3339Nano, *it.HoraFin); err == nil {
			rec.HoraFin = &fin
		}
	}
	return rec
}
