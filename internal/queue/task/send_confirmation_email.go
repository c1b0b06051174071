package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const SendConfirmationEmailTaskName = "sendConfirmationEmailTask"

type SendConfirmationEmail struct {
	// Recipient gets the mail; RegistrationEmail identifies the record whose
	// details fill the body. They differ for the admin copy.
	Recipient         string `json:"recipient"`
	RegistrationEmail string `json:"registration_email"`
}

func NewSendConfirmationEmailTask(recipient string, registrationEmail string) (*asynq.Task, error) {
	data := SendConfirmationEmail{
		Recipient:         recipient,
		RegistrationEmail: registrationEmail,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendConfirmationEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}
