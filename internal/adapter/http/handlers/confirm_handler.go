package handlers

import (
	"log"
	"net/http"

	response "estado_pedidos/internal/adapter/http/dto/response"
	"estado_pedidos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ConfirmStepHandler handles the out-of-band "stage work finished" signal
// that resumes the paused workflow.

type ConfirmStepHandler struct {
	usecase usecase.IConfirmStepUseCase
}

func NewConfirmStepHandler(uc usecase.IConfirmStepUseCase) *ConfirmStepHandler {
	return &ConfirmStepHandler{usecase: uc}
}

func (h *ConfirmStepHandler) ConfirmStep(c *gin.Context) {
	ev := normalizedRequest(c)
	log.Printf("[confirm][handler] confirm-step tenant_id=%s id_pedido=%s paso=%s", ev.TenantID(), ev.IDPedido(), ev.String("paso"))

	res, err := h.usecase.ConfirmStep(c.Request.Context(), ev)
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStepConfirmation(res))
}
