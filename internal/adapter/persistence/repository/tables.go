package repository

// Default table names. Overridable per table through the TABLA_* env vars.
const (
	defaultPedidosTableName     = "PEDIDOS"
	defaultCocinaTableName      = "COCINA"
	defaultDespachadorTableName = "DESPACHADOR"
	defaultDeliveryTableName    = "DELIVERY"
)

// Tables holds the DynamoDB table names the service writes to. Passed
// explicitly to the repository constructors instead of read from globals.

type Tables struct {
	Pedidos     string
	Cocina      string
	Despachador string
	Delivery    string
}

// LoadTablesFromEnv resolves table names from TABLA_PEDIDOS, TABLA_COCINA,
// TABLA_DESPACHADOR and TABLA_DELIVERY, falling back to the defaults.
func LoadTablesFromEnv() Tables {
	return Tables{
		Pedidos:     getenvDefault("TABLA_PEDIDOS", defaultPedidosTableName),
		Cocina:      getenvDefault("TABLA_COCINA", defaultCocinaTableName),
		Despachador: getenvDefault("TABLA_DESPACHADOR", defaultDespachadorTableName),
		Delivery:    getenvDefault("TABLA_DELIVERY", defaultDeliveryTableName),
	}
}
