package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"estado_pedidos/internal/adapter/event"
	"estado_pedidos/internal/domain/entities"
	"estado_pedidos/internal/usecase/interfaces"
)

var (
	ErrUnsupportedPaso = errors.New("unsupported paso")
	ErrTokenNotFound   = errors.New("task token not found")
)

const (
	PasoCocinaLista          = "cocina-lista"
	PasoEmpaquetamientoListo = "empaquetamiento-listo"
	PasoDeliveryEntregado    = "delivery-entregado"
)

var pasoTokenFields = map[string]string{
	PasoCocinaLista:          entities.TokenFieldCocina,
	PasoEmpaquetamientoListo: entities.TokenFieldEmpaquetamiento,
	PasoDeliveryEntregado:    entities.TokenFieldDelivery,
}

// IConfirmStepUseCase signals the orchestrator that a stage's out-of-band
// work finished, resuming the paused workflow via the stored task token.

type IConfirmStepUseCase interface {
	ConfirmStep(ctx context.Context, ev event.Normalized) (StepConfirmation, error)
}

type StepConfirmation struct {
	TenantID string
	IDPedido string
	Paso     string
}

type ConfirmStepUseCase struct {
	pedidos      interfaces.IPedidoRepository
	orchestrator interfaces.ITaskOrchestrator
}

var _ IConfirmStepUseCase = (*ConfirmStepUseCase)(nil)

func NewConfirmStepUseCase(pedidos interfaces.IPedidoRepository, orchestrator interfaces.ITaskOrchestrator) *ConfirmStepUseCase {
	return &ConfirmStepUseCase{pedidos: pedidos, orchestrator: orchestrator}
}

func (u *ConfirmStepUseCase) ConfirmStep(ctx context.Context, ev event.Normalized) (StepConfirmation, error) {
	tenantID := ev.TenantID()
	idPedido := ev.IDPedido()
	paso := ev.String("paso")
	log.Printf("[confirm][usecase] confirm-step start tenant_id=%s id_pedido=%s paso=%s", tenantID, idPedido, paso)

	if tenantID == "" || idPedido == "" {
		return StepConfirmation{}, ErrMissingIdentifiers
	}

	p, err := u.pedidos.GetByID(ctx, tenantID, idPedido)
	if err != nil {
		log.Printf("[confirm][usecase] pedido load failed tenant_id=%s id_pedido=%s err=%v", tenantID, idPedido, err)
		return StepConfirmation{}, err
	}
	if p.ID == "" {
		return StepConfirmation{}, ErrPedidoNotFound
	}

	tokenField, ok := pasoTokenFields[paso]
	if !ok {
		return StepConfirmation{}, fmt.Errorf("%w: '%s', valid values are %s, %s, %s",
			ErrUnsupportedPaso, paso, PasoCocinaLista, PasoEmpaquetamientoListo, PasoDeliveryEntregado)
	}

	token := p.TaskToken(tokenField)
	if token == "" {
		return StepConfirmation{}, fmt.Errorf("%w for paso '%s': was the flow started correctly?", ErrTokenNotFound, paso)
	}

	output, err := json.Marshal(map[string]string{
		"paso":      paso,
		"tenant_id": p.TenantID,
		"id_pedido": p.ID,
	})
	if err != nil {
		return StepConfirmation{}, err
	}

	if err := u.orchestrator.SignalSuccess(ctx, token, output); err != nil {
		log.Printf("[confirm][usecase] orchestrator signal failed id_pedido=%s paso=%s err=%v", p.ID, paso, err)
		return StepConfirmation{}, err
	}

	if err := u.pedidos.RemoveTaskToken(ctx, p.TenantID, p.ID, tokenField); err != nil {
		log.Printf("[confirm][usecase] token removal failed id_pedido=%s field=%s err=%v", p.ID, tokenField, err)
		return StepConfirmation{}, err
	}

	log.Printf("[confirm][usecase] confirm-step success tenant_id=%s id_pedido=%s paso=%s", p.TenantID, p.ID, paso)
	return StepConfirmation{TenantID: p.TenantID, IDPedido: p.ID, Paso: paso}, nil
}
