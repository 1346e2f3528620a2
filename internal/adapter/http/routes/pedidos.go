package routes

import (
	"estado_pedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPedidos = "/pedidos"
)

func addPedidoRoutes(rg *gin.RouterGroup, transitionHandler *handlers.TransitionHandler, confirmHandler *handlers.ConfirmStepHandler) {
	pedidos := rg.Group(PathPedidos)
	{
		// One route per edge of the fulfillment state machine.
		pedidos.POST("/:id_pedido/cocina", transitionHandler.AdvanceToKitchen)
		pedidos.POST("/:id_pedido/empaquetamiento", transitionHandler.AdvanceToPackaging)
		pedidos.POST("/:id_pedido/delivery", transitionHandler.AdvanceToDelivery)
		pedidos.POST("/:id_pedido/entregado", transitionHandler.AdvanceToDelivered)

		// Out-of-band confirmation that resumes the orchestrator.
		pedidos.POST("/:id_pedido/confirmar", confirmHandler.ConfirmStep)
	}
}
