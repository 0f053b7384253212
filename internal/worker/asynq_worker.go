package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/provider"
	"github.com/northcart/northcart/internal/queue"
	"github.com/northcart/northcart/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles asynchronous tasks dequeued from redis.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the task consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires the task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmation, c.handleOrderConfirmation)
}

// handleOrderConfirmation sends the order confirmation email. Orders or
// carts that disappeared since enqueue are dropped, not retried.
func (c *Consumer) handleOrderConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	receiverEmail := ""
	if user != nil {
		receiverEmail = strings.TrimSpace(user.Email)
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_confirmation_skip_empty_receiver", "order_id", order.ID)
		return nil
	}

	cart, err := c.CartRepo.GetByID(order.CartID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_cart_failed", "order_id", order.ID, "cart_id", order.CartID, "error", err)
		return err
	}
	if cart == nil {
		logger.Debugw("worker_order_confirmation_skip_cart_not_found", "order_id", order.ID, "cart_id", order.CartID)
		return nil
	}

	if c.EmailService == nil {
		logger.Warnw("worker_order_confirmation_skip_email_service_nil", "order_id", order.ID)
		return nil
	}

	input := service.OrderConfirmationEmailInput{
		OrderID: order.ID,
		Total:   order.Total,
	}
	for _, item := range cart.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		input.Lines = append(input.Lines, service.OrderConfirmationLine{
			Name:     name,
			Quantity: item.Quantity,
			Price:    item.PurchasePrice,
		})
	}

	if err := c.EmailService.SendOrderConfirmation(receiverEmail, input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_order_confirmation_skip_email_unavailable", "order_id", order.ID, "error", err)
			return nil
		}
		logger.Warnw("worker_order_confirmation_send_failed",
			"order_id", order.ID,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	return nil
}
