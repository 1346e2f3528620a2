package interfaces

import (
	"context"

	"estado_pedidos/internal/domain/entities"
)

// IPedidoRepository abstracts DynamoDB persistence for Pedido.
//
// GetByID returns the zero value (empty ID) when the pedido does not exist.
// UpdateEstado performs the conditional state transition: the write only
// succeeds when estado_pedido still equals expected; ok=false reports a
// lost race or a concurrent transition, not a transport failure. tokenField
// may be "" when the transition stores no continuation token.

type IPedidoRepository interface {
	GetByID(ctx context.Context, tenantID, idPedido string) (entities.Pedido, error)
	UpdateEstado(ctx context.Context, tenantID, idPedido string, expected, next entities.OrderState, tokenField, token string) (ok bool, err error)
	RemoveTaskToken(ctx context.Context, tenantID, idPedido, tokenField string) error
}
