package orderControllers

import (
	"errors"
	"strings"

	"github.com/Orekusandoru/online-store/models"
)

// Allowed status moves. delivered and cancelled are terminal.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusPaid, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusPaid:      {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:   {models.OrderStatusDelivered},
}

// mapOrderStatus parses a user-supplied status string.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusPaid):
		return models.OrderStatusPaid, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to models.OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionStatus validates and applies a status change on an order loaded
// in memory. Callers persist the order afterwards.
func TransitionStatus(order *models.Order, to models.OrderStatus) error {
	if order.Status == to {
		return nil
	}
	if !CanTransition(order.Status, to) {
		return errors.New("invalid status transition: " + string(order.Status) + " -> " + string(to))
	}
	order.Status = to
	return nil
}
