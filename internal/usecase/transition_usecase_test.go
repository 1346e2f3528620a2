package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"estado_pedidos/internal/adapter/event"
	"estado_pedidos/internal/domain/entities"
	mock_interfaces "estado_pedidos/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func pedidoIn(estado entities.OrderState) entities.Pedido {
	return entities.Pedido{TenantID: "t1", ID: "o1", Estado: estado}
}

func TestTransitionUseCase_Guard(t *testing.T) {
	t.Run("missing identifiers", func(t *testing.T) {
		uc := NewTransitionUseCase(nil, nil, nil, nil)
		_, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1"})
		if !errors.Is(err, ErrMissingIdentifiers) {
			t.Fatalf("expected ErrMissingIdentifiers, got %v", err)
		}
	})

	t.Run("pedido not found performs no writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		cocina := mock_interfaces.NewMockIStageRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, cocina, nil, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(entities.Pedido{}, nil)

		_, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1"})
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("wrong estado names both states and performs no writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		cocina := mock_interfaces.NewMockIStageRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, cocina, nil, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStateDelivery), nil)

		_, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1"})
		if !errors.Is(err, ErrWrongEstado) {
			t.Fatalf("expected ErrWrongEstado, got %v", err)
		}
		if !strings.Contains(err.Error(), "'delivery'") || !strings.Contains(err.Error(), "'paid'") {
			t.Fatalf("expected both states in the message, got %q", err.Error())
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, nil, nil, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(entities.Pedido{}, errors.New("db"))

		_, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTransitionUseCase_AdvanceToKitchen(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		cocina := mock_interfaces.NewMockIStageRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, cocina, nil, nil)

		idPedido := uuid.NewString()
		pedidos.EXPECT().GetByID(gomock.Any(), "t1", idPedido).Return(entities.Pedido{TenantID: "t1", ID: idPedido, Estado: entities.OrderStatePaid}, nil)

		var created entities.StageRecord
		cocina.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.StageRecord) error {
			created = rec
			return nil
		})
		pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", idPedido, entities.OrderStatePaid, entities.OrderStateKitchen, "", "").Return(true, nil)

		res, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": idPedido, "id_empleado": "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.IDPedido != idPedido || created.IDEmpleado != "e1" {
			t.Fatalf("unexpected record: %+v", created)
		}
		if created.Status != entities.StageStatusInProgress {
			t.Fatalf("expected in_progress, got %s", created.Status)
		}
		if created.HoraFin != nil {
			t.Fatalf("hora_fin must be nil on open, got %v", created.HoraFin)
		}
		if created.HoraComienzo.IsZero() {
			t.Fatalf("hora_comienzo must be stamped")
		}
		if res.Cocina.IDEmpleado != "e1" || res.IDPedido != idPedido {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("worker defaults to unassigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		cocina := mock_interfaces.NewMockIStageRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, cocina, nil, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStatePaid), nil)
		cocina.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.StageRecord) error {
			if rec.IDEmpleado != entities.WorkerUnassigned {
				t.Fatalf("expected unassigned worker, got %q", rec.IDEmpleado)
			}
			return nil
		})
		pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", "o1", entities.OrderStatePaid, entities.OrderStateKitchen, "", "").Return(true, nil)

		if _, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("task token stored under the kitchen field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		cocina := mock_interfaces.NewMockIStageRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, cocina, nil, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStatePaid), nil)
		cocina.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", "o1", entities.OrderStatePaid, entities.OrderStateKitchen, entities.TokenFieldCocina, "tok-1").Return(true, nil)

		if _, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1", "taskToken": "tok-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost conditional update reports wrong estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		cocina := mock_interfaces.NewMockIStageRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, cocina, nil, nil)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStatePaid), nil)
		cocina.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", "o1", entities.OrderStatePaid, entities.OrderStateKitchen, "", "").Return(false, nil)

		_, err := uc.AdvanceToKitchen(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1"})
		if !errors.Is(err, ErrWrongEstado) {
			t.Fatalf("expected ErrWrongEstado, got %v", err)
		}
	})
}

func TestTransitionUseCase_AdvanceToPackaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
	cocina := mock_interfaces.NewMockIStageRepository(ctrl)
	despachador := mock_interfaces.NewMockIStageRepository(ctrl)
	uc := NewTransitionUseCase(pedidos, cocina, despachador, nil)

	pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStateKitchen), nil)
	cocina.EXPECT().Close(gomock.Any(), "o1").Return(entities.StageRecord{IDPedido: "o1", Status: entities.StageStatusDone}, nil)
	despachador.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.StageRecord) error {
		if rec.Status != entities.StageStatusInProgress {
			t.Fatalf("expected in_progress, got %s", rec.Status)
		}
		return nil
	})
	pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", "o1", entities.OrderStateKitchen, entities.OrderStatePackaging, entities.TokenFieldEmpaquetamiento, "tok-2").Return(true, nil)

	res, err := uc.AdvanceToPackaging(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1", "id_empleado": "e2", "taskToken": "tok-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Cocina.Status != entities.StageStatusDone {
		t.Fatalf("expected closed cocina record, got %+v", res.Cocina)
	}
	if res.Despachador.IDEmpleado != "e2" {
		t.Fatalf("unexpected despachador record: %+v", res.Despachador)
	}
}

func TestTransitionUseCase_AdvanceToDelivery(t *testing.T) {
	t.Run("optional fields default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		despachador := mock_interfaces.NewMockIStageRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, nil, despachador, delivery)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStatePackaging), nil)
		despachador.EXPECT().Close(gomock.Any(), "o1").Return(entities.StageRecord{IDPedido: "o1", Status: entities.StageStatusDone}, nil)
		delivery.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.DeliveryRecord) error {
			if rec.Repartidor != entities.WorkerUnassigned || rec.IDRepartidor != entities.WorkerUnassigned {
				t.Fatalf("expected unassigned driver, got %+v", rec)
			}
			if rec.Origen != entities.LocationUndefined || rec.Destino != entities.LocationUndefined {
				t.Fatalf("expected undefined locations, got %+v", rec)
			}
			if rec.Status != entities.DeliveryStatusEnCamino {
				t.Fatalf("expected 'en camino', got %s", rec.Status)
			}
			if rec.TenantID != "t1" {
				t.Fatalf("delivery record must carry tenant_id, got %+v", rec)
			}
			return nil
		})
		pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", "o1", entities.OrderStatePackaging, entities.OrderStateDelivery, "", "").Return(true, nil)

		if _, err := uc.AdvanceToDelivery(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("driver fields carried through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
		despachador := mock_interfaces.NewMockIStageRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryRepository(ctrl)
		uc := NewTransitionUseCase(pedidos, nil, despachador, delivery)

		pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStatePackaging), nil)
		despachador.EXPECT().Close(gomock.Any(), "o1").Return(entities.StageRecord{}, nil)
		delivery.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.DeliveryRecord) error {
			if rec.Repartidor != "ana" || rec.IDRepartidor != "r9" || rec.Origen != "local" || rec.Destino != "casa" {
				t.Fatalf("unexpected record: %+v", rec)
			}
			return nil
		})
		pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", "o1", entities.OrderStatePackaging, entities.OrderStateDelivery, entities.TokenFieldDelivery, "tok-3").Return(true, nil)

		ev := event.Normalized{
			"tenant_id": "t1", "id_pedido": "o1",
			"repartidor": "ana", "id_repartidor": "r9",
			"origen": "local", "destino": "casa",
			"taskToken": "tok-3",
		}
		if _, err := uc.AdvanceToDelivery(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTransitionUseCase_AdvanceToDelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pedidos := mock_interfaces.NewMockIPedidoRepository(ctrl)
	delivery := mock_interfaces.NewMockIDeliveryRepository(ctrl)
	uc := NewTransitionUseCase(pedidos, nil, nil, delivery)

	pedidos.EXPECT().GetByID(gomock.Any(), "t1", "o1").Return(pedidoIn(entities.OrderStateDelivery), nil)
	delivery.EXPECT().MarkDelivered(gomock.Any(), "o1").Return(nil)
	// Terminal transition never stores a token, even when one is sent.
	pedidos.EXPECT().UpdateEstado(gomock.Any(), "t1", "o1", entities.OrderStateDelivery, entities.OrderStateDelivered, "", "").Return(true, nil)

	res, err := uc.AdvanceToDelivered(context.Background(), event.Normalized{"tenant_id": "t1", "id_pedido": "o1", "taskToken": "tok-4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TenantID != "t1" || res.IDPedido != "o1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
