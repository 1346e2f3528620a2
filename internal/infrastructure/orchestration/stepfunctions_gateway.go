package orchestration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"estado_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
)

// StepFunctionsGateway resumes paused Step Functions executions via
// SendTaskSuccess. In mock mode (STEP_FUNCTIONS_MOCK) the signal is only
// logged, which keeps local runs free of a real state machine.

type StepFunctionsGateway struct {
	client   *sfn.Client
	mockMode bool
}

var _ interfaces.ITaskOrchestrator = (*StepFunctionsGateway)(nil)

func NewStepFunctionsGateway(client *sfn.Client) *StepFunctionsGateway {
	if isStepFunctionsMockEnabled() {
		log.Printf("[confirm][gateway] mock mode enabled")
		return &StepFunctionsGateway{mockMode: true}
	}
	return &StepFunctionsGateway{client: client}
}

func (g *StepFunctionsGateway) SignalSuccess(ctx context.Context, taskToken string, output json.RawMessage) error {
	if g.mockMode {
		log.Printf("[confirm][gateway] mock signal-success token_len=%d output=%s", len(taskToken), output)
		return nil
	}

	_, err := g.client.SendTaskSuccess(ctx, &sfn.SendTaskSuccessInput{
		TaskToken: aws.String(taskToken),
		Output:    aws.String(string(output)),
	})
	if err != nil {
		log.Printf("[confirm][gateway] send-task-success failed err=%v", err)
		return err
	}
	log.Printf("[confirm][gateway] send-task-success ok output_len=%d", len(output))
	return nil
}

func isStepFunctionsMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STEP_FUNCTIONS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
