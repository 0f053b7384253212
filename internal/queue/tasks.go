package queue

import (
	"encoding/json"

	"github.com/northcart/northcart/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation is the order confirmation email task type.
	TaskOrderConfirmation = constants.TaskOrderConfirmation
)

// OrderConfirmationPayload identifies the order to confirm by email.
type OrderConfirmationPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderConfirmationTask builds the asynq task for a confirmation email.
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}
