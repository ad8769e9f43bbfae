package orderControllers

import (
	"testing"

	"github.com/Orekusandoru/online-store/models"
)

func validItems() []OrderItemInput {
	return []OrderItemInput{
		{ProductID: 1, Quantity: 2, Price: 100},
		{ProductID: 3, Quantity: 1, Price: 49.5},
	}
}

func TestBuildOrderComputesTotal(t *testing.T) {
	userID := uint(7)
	order, err := BuildOrder(&userID, CreateOrderRequest{Items: validItems()})
	if err != nil {
		t.Fatalf("BuildOrder returned error: %v", err)
	}

	if got, want := order.TotalPrice, 2*100+1*49.5; got != want {
		t.Errorf("total: got %v want %v", got, want)
	}
	if len(order.Items) != 2 {
		t.Errorf("items: got %d want 2", len(order.Items))
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status: got %s want pending", order.Status)
	}
	if order.UserID == nil || *order.UserID != 7 {
		t.Errorf("user id not carried: %v", order.UserID)
	}
}

func TestBuildOrderRejectsEmptyItems(t *testing.T) {
	userID := uint(1)
	if _, err := BuildOrder(&userID, CreateOrderRequest{}); err == nil {
		t.Fatal("expected error for empty item list")
	}
}

func TestBuildOrderRejectsBadItem(t *testing.T) {
	userID := uint(1)
	cases := []OrderItemInput{
		{ProductID: 1, Quantity: 0, Price: 10},
		{ProductID: 1, Quantity: 1, Price: 0},
		{ProductID: 1, Quantity: -2, Price: 10},
	}
	for _, item := range cases {
		if _, err := BuildOrder(&userID, CreateOrderRequest{Items: []OrderItemInput{item}}); err == nil {
			t.Errorf("expected error for item %+v", item)
		}
	}
}

func TestBuildOrderGuestValidation(t *testing.T) {
	full := CreateOrderRequest{
		Items:   validItems(),
		Name:    "Oleh",
		Email:   "oleh@example.com",
		Phone:   "+380000000000",
		Address: "Kyiv, Khreshchatyk 1",
	}

	if _, err := BuildOrder(nil, full); err != nil {
		t.Fatalf("complete guest tuple rejected: %v", err)
	}

	drop := []func(r *CreateOrderRequest){
		func(r *CreateOrderRequest) { r.Name = "" },
		func(r *CreateOrderRequest) { r.Email = "" },
		func(r *CreateOrderRequest) { r.Phone = "" },
		func(r *CreateOrderRequest) { r.Address = "" },
	}
	for i, mutate := range drop {
		req := full
		mutate(&req)
		if _, err := BuildOrder(nil, req); err == nil {
			t.Errorf("case %d: missing guest field accepted", i)
		}
	}

	// An authenticated user does not need the contact tuple.
	userID := uint(5)
	if _, err := BuildOrder(&userID, CreateOrderRequest{Items: validItems()}); err != nil {
		t.Fatalf("authenticated order without guest fields rejected: %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to models.OrderStatus }{
		{models.OrderStatusPending, models.OrderStatusConfirmed},
		{models.OrderStatusPending, models.OrderStatusPaid},
		{models.OrderStatusPending, models.OrderStatusCancelled},
		{models.OrderStatusConfirmed, models.OrderStatusPaid},
		{models.OrderStatusConfirmed, models.OrderStatusShipped},
		{models.OrderStatusPaid, models.OrderStatusShipped},
		{models.OrderStatusShipped, models.OrderStatusDelivered},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to models.OrderStatus }{
		{models.OrderStatusDelivered, models.OrderStatusPending},
		{models.OrderStatusDelivered, models.OrderStatusShipped},
		{models.OrderStatusCancelled, models.OrderStatusPaid},
		{models.OrderStatusShipped, models.OrderStatusPending},
		{models.OrderStatusPaid, models.OrderStatusPending},
		{models.OrderStatusPending, models.OrderStatusDelivered},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestTransitionStatus(t *testing.T) {
	order := models.Order{Status: models.OrderStatusPending}

	if err := TransitionStatus(&order, models.OrderStatusPaid); err != nil {
		t.Fatalf("pending -> paid rejected: %v", err)
	}
	if order.Status != models.OrderStatusPaid {
		t.Fatalf("status not applied: %s", order.Status)
	}

	// Same-status moves are a no-op, the payment callback may repeat.
	if err := TransitionStatus(&order, models.OrderStatusPaid); err != nil {
		t.Fatalf("paid -> paid should be a no-op: %v", err)
	}

	if err := TransitionStatus(&order, models.OrderStatusPending); err == nil {
		t.Fatal("paid -> pending should be rejected")
	}
}

func TestMapOrderStatus(t *testing.T) {
	if status, err := mapOrderStatus("Shipped"); err != nil || status != models.OrderStatusShipped {
		t.Errorf("mapOrderStatus(Shipped): got %s, %v", status, err)
	}
	if _, err := mapOrderStatus("teleported"); err == nil {
		t.Error("unknown status accepted")
	}
}
