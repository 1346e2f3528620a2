package entities

import "time"

// StageStatus is the lifecycle of a kitchen/packaging stage record.

type StageStatus string

const (
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusDone       StageStatus = "done"
)

// DeliveryStatus uses its own vocabulary. External consumers depend on
// these exact strings; do not align them with StageStatus.

type DeliveryStatus string

const (
	DeliveryStatusEnCamino DeliveryStatus = "en camino"
	DeliveryStatusCumplido DeliveryStatus = "cumplido"
)

// Defaults applied when the request omits optional assignment fields.
const (
	WorkerUnassigned  = "unassigned"
	LocationUndefined = "undefined"
)

// StageRecord is the work log persisted in the COCINA and DESPACHADOR
// tables (identical schema, different table).
//
// Storage model (DynamoDB):
//   - PK: id_pedido (string)
//
// HoraFin stays nil (stored as NULL) until the order leaves the stage.

type StageRecord struct {
	IDPedido     string      `json:"id_pedido"`
	IDEmpleado   string      `json:"id_empleado"`
	HoraComienzo time.Time   `json:"hora_comienzo"`
	HoraFin      *time.Time  `json:"hora_fin"`
	Status       StageStatus `json:"status"`
}

// DeliveryRecord is the work log persisted in the DELIVERY table. Unlike
// the other stage tables it also carries tenant_id.
//
// Storage model (DynamoDB):
//   - PK: id_pedido (string)

type DeliveryRecord struct {
	IDPedido     string         `json:"id_pedido"`
	TenantID     string         `json:"tenant_id"`
	Repartidor   string         `json:"repartidor"`
	IDRepartidor string         `json:"id_repartidor"`
	Origen       string         `json:"origen"`
	Destino      string         `json:"destino"`
	Status       DeliveryStatus `json:"status"`
}
