package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendOTPEmailTaskName = "sendOtpEmailTask"
	SendEmailQueueName   = "sendEmailQueue"
)

type SendOTPEmail struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func NewSendOTPEmailTask(email string, code string) (*asynq.Task, error) {
	data := SendOTPEmail{
		Email: email,
		Code:  code,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendOTPEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}
