package entities

// OrderState is the fulfillment state persisted on the pedido.
//
// The machine is strictly linear:
//
//	paid -> kitchen -> packaging -> delivery -> delivered
//
// "paid" is set by the upstream order/payment process; "delivered" is
// terminal. This service is the sole writer of estado_pedido.

type OrderState string

const (
	OrderStatePaid      OrderState = "paid"
	OrderStateKitchen   OrderState = "kitchen"
	OrderStatePackaging OrderState = "packaging"
	OrderStateDelivery  OrderState = "delivery"
	OrderStateDelivered OrderState = "delivered"
)

// Task token attribute names on the pedido item. At most one is present at
// a time, matching the stage currently awaiting confirmation.
const (
	TokenFieldCocina          = "task_token_cocina"
	TokenFieldEmpaquetamiento = "task_token_empaquetamiento"
	TokenFieldDelivery        = "task_token_delivery"
)

// Pedido is the order entity persisted in the PEDIDOS table.
//
// Storage model (DynamoDB):
//   - PK: tenant_id (HASH) + id (RANGE)
//
// The task token fields hold opaque Step Functions continuation tokens and
// are written by the transition handlers and removed by ConfirmStep.

type Pedido struct {
	TenantID string     `json:"tenant_id"`
	ID       string     `json:"id"`
	Estado   OrderState `json:"estado_pedido"`

	TaskTokenCocina          string `json:"task_token_cocina,omitempty"`
	TaskTokenEmpaquetamiento string `json:"task_token_empaquetamiento,omitempty"`
	TaskTokenDelivery        string `json:"task_token_delivery,omitempty"`
}

// TaskToken returns the token stored under the given pedido attribute name,
// or "" when that stage is not awaiting confirmation.
func (p Pedido) TaskToken(field string) string {
	switch field {
	case TokenFieldCocina:
		return p.TaskTokenCocina
	case TokenFieldEmpaquetamiento:
		return p.TaskTokenEmpaquetamiento
	case TokenFieldDelivery:
		return p.TaskTokenDelivery
	}
	return ""
}
