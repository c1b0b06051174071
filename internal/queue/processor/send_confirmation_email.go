package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vopial/kyc-backend/internal/queue/task"
	"github.com/vopial/kyc-backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendConfirmationEmailProcessor struct {
	workers *worker.Workers
}

func NewSendConfirmationEmailProcessor(workers *worker.Workers) *sendConfirmationEmailProcessor {
	return &sendConfirmationEmailProcessor{
		workers: workers,
	}
}

func (p *sendConfirmationEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendConfirmationEmail
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send confirmation email task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendRegistrationDetails(ctx, data.Recipient, data.RegistrationEmail); err != nil {
		return fmt.Errorf("send registration details email failed: %w", err)
	}

	return nil
}
