package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vopial/kyc-backend/internal/queue/task"
	"github.com/vopial/kyc-backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendOTPEmailProcessor struct {
	workers *worker.Workers
}

func NewSendOTPEmailProcessor(workers *worker.Workers) *sendOTPEmailProcessor {
	return &sendOTPEmailProcessor{
		workers: workers,
	}
}

func (p *sendOTPEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendOTPEmail
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send otp email task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendOTPEmail(ctx, data.Email, data.Code); err != nil {
		return fmt.Errorf("send otp email failed: %w", err)
	}

	return nil
}
