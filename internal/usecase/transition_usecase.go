package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"estado_pedidos/internal/adapter/event"
	"estado_pedidos/internal/domain/entities"
	"estado_pedidos/internal/usecase/interfaces"
)

var (
	ErrMissingIdentifiers = errors.New("missing tenant_id or id_pedido in request")
	ErrPedidoNotFound     = errors.New("pedido not found")
	ErrWrongEstado        = errors.New("wrong estado_pedido")
)

// ITransitionUseCase advances a pedido along the fulfillment pipeline.
//
// Every operation is guarded: the pedido must exist and sit in the exact
// prior state, otherwise nothing is written. Each call closes the previous
// stage record where applicable, opens the next one, and moves
// estado_pedido forward with a conditional write.

type ITransitionUseCase interface {
	AdvanceToKitchen(ctx context.Context, ev event.Normalized) (KitchenTransition, error)
	AdvanceToPackaging(ctx context.Context, ev event.Normalized) (PackagingTransition, error)
	AdvanceToDelivery(ctx context.Context, ev event.Normalized) (DeliveryTransition, error)
	AdvanceToDelivered(ctx context.Context, ev event.Normalized) (DeliveredTransition, error)
}

type KitchenTransition struct {
	TenantID string
	IDPedido string
	Cocina   entities.StageRecord
}

type PackagingTransition struct {
	TenantID    string
	IDPedido    string
	Cocina      entities.StageRecord
	Despachador entities.StageRecord
}

type DeliveryTransition struct {
	TenantID    string
	IDPedido    string
	Despachador entities.StageRecord
	Delivery    entities.DeliveryRecord
}

type DeliveredTransition struct {
	TenantID string
	IDPedido string
}

type TransitionUseCase struct {
	pedidos     interfaces.IPedidoRepository
	cocina      interfaces.IStageRepository
	despachador interfaces.IStageRepository
	delivery    interfaces.IDeliveryRepository
}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase(
	pedidos interfaces.IPedidoRepository,
	cocina interfaces.IStageRepository,
	despachador interfaces.IStageRepository,
	delivery interfaces.IDeliveryRepository,
) *TransitionUseCase {
	return &TransitionUseCase{pedidos: pedidos, cocina: cocina, despachador: despachador, delivery: delivery}
}

// guard loads the pedido and checks it sits in the expected state. It
// performs no writes.
func (u *TransitionUseCase) guard(ctx context.Context, ev event.Normalized, expected entities.OrderState) (entities.Pedido, error) {
	tenantID := ev.TenantID()
	idPedido := ev.IDPedido()
	if tenantID == "" || idPedido == "" {
		return entities.Pedido{}, ErrMissingIdentifiers
	}

	p, err := u.pedidos.GetByID(ctx, tenantID, idPedido)
	if err != nil {
		log.Printf("[pedido][usecase] guard load failed tenant_id=%s id_pedido=%s err=%v", tenantID, idPedido, err)
		return entities.Pedido{}, err
	}
	if p.ID == "" {
		return entities.Pedido{}, ErrPedidoNotFound
	}
	if p.Estado != expected {
		return entities.Pedido{}, fmt.Errorf("%w: pedido is in state '%s' but this transition expects '%s'", ErrWrongEstado, p.Estado, expected)
	}
	return p, nil
}

// advanceEstado issues the conditional estado_pedido write and translates a
// failed condition (the pedido left the expected state concurrently) into
// the same wrong-state error the guard produces.
func (u *TransitionUseCase) advanceEstado(ctx context.Context, p entities.Pedido, expected, next entities.OrderState, tokenField, token string) error {
	if token == "" {
		tokenField = ""
	}
	ok, err := u.pedidos.UpdateEstado(ctx, p.TenantID, p.ID, expected, next, tokenField, token)
	if err != nil {
		log.Printf("[pedido][usecase] estado update failed tenant_id=%s id_pedido=%s next=%s err=%v", p.TenantID, p.ID, next, err)
		return err
	}
	if !ok {
		return fmt.Errorf("%w: pedido left state '%s' before the transition to '%s' was applied", ErrWrongEstado, expected, next)
	}
	log.Printf("[pedido][usecase] estado updated tenant_id=%s id_pedido=%s estado=%s", p.TenantID, p.ID, next)
	return nil
}

func (u *TransitionUseCase) AdvanceToKitchen(ctx context.Context, ev event.Normalized) (KitchenTransition, error) {
	log.Printf("[pedido][usecase] advance-to-kitchen start tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())
	p, err := u.guard(ctx, ev, entities.OrderStatePaid)
	if err != nil {
		return KitchenTransition{}, err
	}

	rec := entities.StageRecord{
		IDPedido:     p.ID,
		IDEmpleado:   ev.StringDefault("id_empleado", entities.WorkerUnassigned),
		HoraComienzo: time.Now().UTC(),
		Status:       entities.StageStatusInProgress,
	}
	if err := u.cocina.Create(ctx, rec); err != nil {
		log.Printf("[pedido][usecase] cocina create failed id_pedido=%s err=%v", p.ID, err)
		return KitchenTransition{}, err
	}

	if err := u.advanceEstado(ctx, p, entities.OrderStatePaid, entities.OrderStateKitchen, entities.TokenFieldCocina, ev.TaskToken()); err != nil {
		return KitchenTransition{}, err
	}
	return KitchenTransition{TenantID: p.TenantID, IDPedido: p.ID, Cocina: rec}, nil
}

func (u *TransitionUseCase) AdvanceToPackaging(ctx context.Context, ev event.Normalized) (PackagingTransition, error) {
	log.Printf("[pedido][usecase] advance-to-packaging start tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())
	p, err := u.guard(ctx, ev, entities.OrderStateKitchen)
	if err != nil {
		return PackagingTransition{}, err
	}

	closed, err := u.cocina.Close(ctx, p.ID)
	if err != nil {
		log.Printf("[pedido][usecase] cocina close failed id_pedido=%s err=%v", p.ID, err)
		return PackagingTransition{}, err
	}

	rec := entities.StageRecord{
		IDPedido:     p.ID,
		IDEmpleado:   ev.StringDefault("id_empleado", entities.WorkerUnassigned),
		HoraComienzo: time.Now().UTC(),
		Status:       entities.StageStatusInProgress,
	}
	if err := u.despachador.Create(ctx, rec); err != nil {
		log.Printf("[pedido][usecase] despachador create failed id_pedido=%s err=%v", p.ID, err)
		return PackagingTransition{}, err
	}

	if err := u.advanceEstado(ctx, p, entities.OrderStateKitchen, entities.OrderStatePackaging, entities.TokenFieldEmpaquetamiento, ev.TaskToken()); err != nil {
		return PackagingTransition{}, err
	}
	return PackagingTransition{TenantID: p.TenantID, IDPedido: p.ID, Cocina: closed, Despachador: rec}, nil
}

func (u *TransitionUseCase) AdvanceToDelivery(ctx context.Context, ev event.Normalized) (DeliveryTransition, error) {
	log.Printf("[pedido][usecase] advance-to-delivery start tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())
	p, err := u.guard(ctx, ev, entities.OrderStatePackaging)
	if err != nil {
		return DeliveryTransition{}, err
	}

	closed, err := u.despachador.Close(ctx, p.ID)
	if err != nil {
		log.Printf("[pedido][usecase] despachador close failed id_pedido=%s err=%v", p.ID, err)
		return DeliveryTransition{}, err
	}

	rec := entities.DeliveryRecord{
		IDPedido:     p.ID,
		TenantID:     p.TenantID,
		Repartidor:   ev.StringDefault("repartidor", entities.WorkerUnassigned),
		IDRepartidor: ev.StringDefault("id_repartidor", entities.WorkerUnassigned),
		Origen:       ev.StringDefault("origen", entities.LocationUndefined),
		Destino:      ev.StringDefault("destino", entities.LocationUndefined),
		Status:       entities.DeliveryStatusEnCamino,
	}
	if err := u.delivery.Create(ctx, rec); err != nil {
		log.Printf("[pedido][usecase] delivery create failed id_pedido=%s err=%v", p.ID, err)
		return DeliveryTransition{}, err
	}

	if err := u.advanceEstado(ctx, p, entities.OrderStatePackaging, entities.OrderStateDelivery, entities.TokenFieldDelivery, ev.TaskToken()); err != nil {
		return DeliveryTransition{}, err
	}
	return DeliveryTransition{TenantID: p.TenantID, IDPedido: p.ID, Despachador: closed, Delivery: rec}, nil
}

func (u *TransitionUseCase) AdvanceToDelivered(ctx context.Context, ev event.Normalized) (DeliveredTransition, error) {
	log.Printf("[pedido][usecase] advance-to-delivered start tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())
	p, err := u.guard(ctx, ev, entities.OrderStateDelivery)
	if err != nil {
		return DeliveredTransition{}, err
	}

	if err := u.delivery.MarkDelivered(ctx, p.ID); err != nil {
		log.Printf("[pedido][usecase] delivery mark-delivered failed id_pedido=%s err=%v", p.ID, err)
		return DeliveredTransition{}, err
	}

	// Terminal state, no continuation token to store.
	if err := u.advanceEstado(ctx, p, entities.OrderStateDelivery, entities.OrderStateDelivered, "", ""); err != nil {
		return DeliveredTransition{}, err
	}
	return DeliveredTransition{TenantID: p.TenantID, IDPedido: p.ID}, nil
}
