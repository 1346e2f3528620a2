package interfaces

import (
	"context"
	"encoding/json"
)

// ITaskOrchestrator abstracts the external workflow orchestrator (Step
// Functions). SignalSuccess resumes the execution paused on taskToken,
// handing it the given JSON output. Tokens are opaque and passed through
// unmodified.

type ITaskOrchestrator interface {
	SignalSuccess(ctx context.Context, taskToken string, output json.RawMessage) error
}
