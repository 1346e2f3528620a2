package routes

import (
	"log"
	"strconv"

	_ "estado_pedidos/docs" // This will be auto-generated
	"estado_pedidos/internal/adapter/http/handlers"
	repository2 "estado_pedidos/internal/adapter/persistence/repository"
	"estado_pedidos/internal/infrastructure/database"
	"estado_pedidos/internal/infrastructure/orchestration"
	"estado_pedidos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	stepFunctions := database.ConnectStepFunctions()

	tables := repository2.LoadTablesFromEnv()
	log.Printf("[routes] tables pedidos=%s cocina=%s despachador=%s delivery=%s",
		tables.Pedidos, tables.Cocina, tables.Despachador, tables.Delivery)

	pedidoRepo := repository2.NewPedidoDynamoRepository(ddb, tables.Pedidos)
	cocinaRepo := repository2.NewStageDynamoRepository(ddb, tables.Cocina)
	despachadorRepo := repository2.NewStageDynamoRepository(ddb, tables.Despachador)
	deliveryRepo := repository2.NewDeliveryDynamoRepository(ddb, tables.Delivery)

	orchestrator := orchestration.NewStepFunctionsGateway(stepFunctions)

	transitionUseCase := usecase.NewTransitionUseCase(pedidoRepo, cocinaRepo, despachadorRepo, deliveryRepo)
	confirmUseCase := usecase.NewConfirmStepUseCase(pedidoRepo, orchestrator)

	transitionHandler := handlers.NewTransitionHandler(transitionUseCase)
	confirmHandler := handlers.NewConfirmStepHandler(confirmUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPedidoRoutes(v1, transitionHandler, confirmHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
