package main

import (
	_ "estado_pedidos/docs"
	"estado_pedidos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Order Transition Service API
// @version         1.0
// @description     Advances pedidos through the fulfillment pipeline (paid -> kitchen -> packaging -> delivery -> delivered) backed by DynamoDB and Step Functions.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
