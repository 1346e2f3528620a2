// Package event normalizes the three request envelope shapes the service
// receives (API gateway body + path parameters, Step Functions resume
// payload with a task token, or an already-flat map) into one flat
// key/value map consumed by the usecases.
package event

import "encoding/json"

// Kind tags the detected envelope shape.

type Kind int

const (
	// KindGateway carries a serialized JSON "body" plus optional
	// "pathParameters".
	KindGateway Kind = iota
	// KindOrchestrator carries a "taskToken" and an "input" map.
	KindOrchestrator
	// KindPlain is already a flat map.
	KindPlain
)

// Normalized is the flat field map produced by Normalize.

type Normalized map[string]any

// Detect classifies a raw envelope. Gateway shape wins when both markers
// are present, matching how the HTTP layer wraps requests.
func Detect(raw map[string]any) Kind {
	if _, ok := raw["body"].(string); ok {
		return KindGateway
	}
	if _, ok := raw["taskToken"].(string); ok {
		return KindOrchestrator
	}
	return KindPlain
}

// Normalize flattens a raw envelope into a Normalized map. It never fails:
// an unparseable gateway body degrades to an empty map (missing required
// fields are then rejected by the guard, not here).
func Normalize(raw map[string]any) Normalized {
	switch Detect(raw) {
	case KindGateway:
		return normalizeGateway(raw)
	case KindOrchestrator:
		return normalizeOrchestrator(raw)
	default:
		out := make(Normalized, len(raw))
		for k, v := range raw {
			out[k] = v
		}
		return out
	}
}

func normalizeGateway(raw map[string]any) Normalized {
	body, _ := raw["body"].(string)

	out := Normalized{}
	if err := json.Unmarshal([]byte(body), &out); err != nil || out == nil {
		out = Normalized{}
	}

	// Path parameters fill gaps only; a body value wins on conflict.
	switch params := raw["pathParameters"].(type) {
	case map[string]any:
		for k, v := range params {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	case map[string]string:
		for k, v := range params {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}

func normalizeOrchestrator(raw map[string]any) Normalized {
	out := Normalized{}
	if input, ok := raw["input"].(map[string]any); ok {
		for k, v := range input {
			out[k] = v
		}
	}
	out["taskToken"], _ = raw["taskToken"].(string)
	return out
}

// String returns the value under key when it is a non-empty string.
func (n Normalized) String(key string) string {
	if s, ok := n[key].(string); ok {
		return s
	}
	return ""
}

// TenantID returns the tenant identifier field.
func (n Normalized) TenantID() string {
	return n.String("tenant_id")
}

// IDPedido returns the order identifier, accepting either "id_pedido" or
// the shorter "id" field name.
func (n Normalized) IDPedido() string {
	if s := n.String("id_pedido"); s != "" {
		return s
	}
	return n.String("id")
}

// TaskToken returns the orchestrator continuation token, if any.
func (n Normalized) TaskToken() string {
	return n.String("taskToken")
}

// StringDefault returns the value under key, or def when absent or empty.
func (n Normalized) StringDefault(key, def string) string {
	if s := n.String(key); s != "" {
		return s
	}
	return def
}
