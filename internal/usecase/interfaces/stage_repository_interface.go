package interfaces

import (
	"context"

	"estado_pedidos/internal/domain/entities"
)

// IStageRepository abstracts the kitchen and packaging work-log tables
// (identical schema, different table name).
//
// Close stamps hora_fin and moves the record to "done"; it returns the
// closed record as stored.

type IStageRepository interface {
	Create(ctx context.Context, rec entities.StageRecord) error
	Close(ctx context.Context, idPedido string) (entities.StageRecord, error)
}

// IDeliveryRepository abstracts the delivery work-log table.

type IDeliveryRepository interface {
	Create(ctx context.Context, rec entities.DeliveryRecord) error
	MarkDelivered(ctx context.Context, idPedido string) error
}
