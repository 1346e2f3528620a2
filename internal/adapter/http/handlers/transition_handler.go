package handlers

import (
	"errors"
	"log"
	"net/http"

	"estado_pedidos/internal/adapter/event"
	response "estado_pedidos/internal/adapter/http/dto/response"
	"estado_pedidos/internal/usecase"
	"estado_pedidos/pkg"

	"github.com/gin-gonic/gin"
)

// TransitionHandler handles HTTP requests for pedido state transitions.

type TransitionHandler struct {
	usecase usecase.ITransitionUseCase
}

func NewTransitionHandler(uc usecase.ITransitionUseCase) *TransitionHandler {
	return &TransitionHandler{usecase: uc}
}

func (h *TransitionHandler) AdvanceToKitchen(c *gin.Context) {
	ev := normalizedRequest(c)
	log.Printf("[pedido][handler] advance-to-kitchen tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())

	res, err := h.usecase.AdvanceToKitchen(c.Request.Context(), ev)
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromKitchenTransition(res))
}

func (h *TransitionHandler) AdvanceToPackaging(c *gin.Context) {
	ev := normalizedRequest(c)
	log.Printf("[pedido][handler] advance-to-packaging tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())

	res, err := h.usecase.AdvanceToPackaging(c.Request.Context(), ev)
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPackagingTransition(res))
}

func (h *TransitionHandler) AdvanceToDelivery(c *gin.Context) {
	ev := normalizedRequest(c)
	log.Printf("[pedido][handler] advance-to-delivery tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())

	res, err := h.usecase.AdvanceToDelivery(c.Request.Context(), ev)
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryTransition(res))
}

func (h *TransitionHandler) AdvanceToDelivered(c *gin.Context) {
	ev := normalizedRequest(c)
	log.Printf("[pedido][handler] advance-to-delivered tenant_id=%s id_pedido=%s", ev.TenantID(), ev.IDPedido())

	res, err := h.usecase.AdvanceToDelivered(c.Request.Context(), ev)
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveredTransition(res))
}

// normalizedRequest wraps the raw body and path parameters into a
// gateway-style envelope so HTTP and direct orchestrator invocations share
// the same normalization path. A body value wins over a path value.
func normalizedRequest(c *gin.Context) event.Normalized {
	raw, err := c.GetRawData()
	if err != nil {
		raw = nil
	}

	params := map[string]any{}
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	return event.Normalize(map[string]any{
		"body":           string(raw),
		"pathParameters": params,
	})
}

func respondTransitionError(c *gin.Context, err error) {
	appErr := mapTransitionError(err)
	log.Printf("[pedido][handler] request failed codigo=%s err=%v", appErr.Code, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTransitionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingIdentifiers):
		return pkg.NewDomainErrorSimple("MISSING_IDENTIFIERS", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWrongEstado):
		return pkg.NewDomainErrorSimple("WRONG_ESTADO", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedPaso):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PASO", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTokenNotFound):
		return pkg.NewDomainErrorSimple("TOKEN_NOT_FOUND", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "an internal error occurred", err, http.StatusInternalServerError)
	}
}
