package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estado_pedidos/internal/adapter/http/handlers/mocks"
	"estado_pedidos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newConfirmRouter(h *ConfirmStepHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/pedidos/:id_pedido/confirmar", h.ConfirmStep)
	return r
}

func TestConfirmStepHandler_ConfirmStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfirmStepUseCase(ctrl)
		r := newConfirmRouter(NewConfirmStepHandler(uc))

		uc.EXPECT().ConfirmStep(gomock.Any(), gomock.Any()).Return(usecase.StepConfirmation{TenantID: "t1", IDPedido: "o1", Paso: usecase.PasoCocinaLista}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos/o1/confirmar", bytes.NewBufferString(`{"tenant_id":"t1","paso":"cocina-lista"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["paso"] != "cocina-lista" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unsupported paso maps to 400 listing valid values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfirmStepUseCase(ctrl)
		r := newConfirmRouter(NewConfirmStepHandler(uc))

		err := fmt.Errorf("%w: 'foo', valid values are %s, %s, %s",
			usecase.ErrUnsupportedPaso, usecase.PasoCocinaLista, usecase.PasoEmpaquetamientoListo, usecase.PasoDeliveryEntregado)
		uc.EXPECT().ConfirmStep(gomock.Any(), gomock.Any()).Return(usecase.StepConfirmation{}, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos/o1/confirmar", bytes.NewBufferString(`{"tenant_id":"t1","paso":"foo"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "cocina-lista") {
			t.Fatalf("expected valid values in mensaje: %s", w.Body.String())
		}
	})

	t.Run("missing token maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfirmStepUseCase(ctrl)
		r := newConfirmRouter(NewConfirmStepHandler(uc))

		err := fmt.Errorf("%w for paso 'cocina-lista': was the flow started correctly?", usecase.ErrTokenNotFound)
		uc.EXPECT().ConfirmStep(gomock.Any(), gomock.Any()).Return(usecase.StepConfirmation{}, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos/o1/confirmar", bytes.NewBufferString(`{"tenant_id":"t1","paso":"cocina-lista"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pedido not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfirmStepUseCase(ctrl)
		r := newConfirmRouter(NewConfirmStepHandler(uc))

		uc.EXPECT().ConfirmStep(gomock.Any(), gomock.Any()).Return(usecase.StepConfirmation{}, usecase.ErrPedidoNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos/o1/confirmar", bytes.NewBufferString(`{"tenant_id":"t1","paso":"cocina-lista"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
