package response

import (
	"time"

	"estado_pedidos/internal/domain/entities"
	"estado_pedidos/internal/usecase"
)

// PedidoRef identifies the pedido a response talks about.

type PedidoRef struct {
	TenantID string `json:"tenant_id"`
	IDPedido string `json:"id_pedido"`
}

// StageRecordResponse mirrors a full stage work-log record.

type StageRecordResponse struct {
	IDPedido     string     `json:"id_pedido"`
	IDEmpleado   string     `json:"id_empleado"`
	HoraComienzo time.Time  `json:"hora_comienzo"`
	HoraFin      *time.Time `json:"hora_fin"`
	Status       string     `json:"status"`
}

// StageSummary is the short form used for the stage a transition closed.

type StageSummary struct {
	IDPedido string `json:"id_pedido"`
	Status   string `json:"status"`
}

type DeliveryRecordResponse struct {
	IDPedido     string `json:"id_pedido"`
	TenantID     string `json:"tenant_id"`
	Repartidor   string `json:"repartidor"`
	IDRepartidor string `json:"id_repartidor"`
	Origen       string `json:"origen"`
	Destino      string `json:"destino"`
	Status       string `json:"status"`
}

type KitchenTransitionResponse struct {
	Mensaje        string              `json:"mensaje"`
	Pedido         PedidoRef           `json:"pedido"`
	RegistroCocina StageRecordResponse `json:"registro_cocina"`
}

type PackagingTransitionResponse struct {
	Mensaje string    `json:"mensaje"`
	Pedido  PedidoRef `json:"pedido"`
	Detalle struct {
		Cocina      StageSummary        `json:"cocina"`
		Despachador StageRecordResponse `json:"despachador"`
	} `json:"detalle"`
}

type DeliveryTransitionResponse struct {
	Mensaje string    `json:"mensaje"`
	Pedido  PedidoRef `json:"pedido"`
	Detalle struct {
		Despachador StageSummary           `json:"despachador"`
		Delivery    DeliveryRecordResponse `json:"delivery"`
	} `json:"detalle"`
}

type DeliveredTransitionResponse struct {
	Mensaje  string       `json:"mensaje"`
	Pedido   PedidoRef    `json:"pedido"`
	Delivery StageSummary `json:"delivery"`
}

type StepConfirmationResponse struct {
	Mensaje string    `json:"mensaje"`
	Paso    string    `json:"paso"`
	Pedido  PedidoRef `json:"pedido"`
}

func FromKitchenTransition(t usecase.KitchenTransition) KitchenTransitionResponse {
	return KitchenTransitionResponse{
		Mensaje:        "transition paid -> kitchen completed",
		Pedido:         PedidoRef{TenantID: t.TenantID, IDPedido: t.IDPedido},
		RegistroCocina: fromStageRecord(t.Cocina),
	}
}

func FromPackagingTransition(t usecase.PackagingTransition) PackagingTransitionResponse {
	res := PackagingTransitionResponse{
		Mensaje: "transition kitchen -> packaging completed",
		Pedido:  PedidoRef{TenantID: t.TenantID, IDPedido: t.IDPedido},
	}
	res.Detalle.Cocina = StageSummary{IDPedido: t.IDPedido, Status: string(entities.StageStatusDone)}
	res.Detalle.Despachador = fromStageRecord(t.Despachador)
	return res
}

func FromDeliveryTransition(t usecase.DeliveryTransition) DeliveryTransitionResponse {
	res := DeliveryTransitionResponse{
		Mensaje: "transition packaging -> delivery completed",
		Pedido:  PedidoRef{TenantID: t.TenantID, IDPedido: t.IDPedido},
	}
	res.Detalle.Despachador = StageSummary{IDPedido: t.IDPedido, Status: string(entities.StageStatusDone)}
	res.Detalle.Delivery = DeliveryRecordResponse{
		IDPedido:     t.Delivery.IDPedido,
		TenantID:     t.Delivery.TenantID,
		Repartidor:   t.Delivery.Repartidor,
		IDRepartidor: t.Delivery.IDRepartidor,
		Origen:       t.Delivery.Origen,
		Destino:      t.Delivery.Destino,
		Status:       string(t.Delivery.Status),
	}
	return res
}

func FromDeliveredTransition(t usecase.DeliveredTransition) DeliveredTransitionResponse {
	return DeliveredTransitionResponse{
		Mensaje:  "transition delivery -> delivered completed",
		Pedido:   PedidoRef{TenantID: t.TenantID, IDPedido: t.IDPedido},
		Delivery: StageSummary{IDPedido: t.IDPedido, Status: string(entities.DeliveryStatusCumplido)},
	}
}

func FromStepConfirmation(s usecase.StepConfirmation) StepConfirmationResponse {
	return StepConfirmationResponse{
		Mensaje: "paso '" + s.Paso + "' confirmed, workflow resumed",
		Paso:    s.Paso,
		Pedido:  PedidoRef{TenantID: s.TenantID, IDPedido: s.IDPedido},
	}
}

func fromStageRecord(rec entities.StageRecord) StageRecordResponse {
	return StageRecordResponse{
		IDPedido:     rec.IDPedido,
		IDEmpleado:   rec.IDEmpleado,
		HoraComienzo: rec.HoraComienzo,
		HoraFin:      rec.HoraFin,
		Status:       string(rec.Status),
	}
}
