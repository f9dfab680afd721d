package services

import (
	"github.com/Fryupi/magazin/entity"
	"github.com/Fryupi/magazin/pkg/apperr"
)

// UpdateStatus lets the seller set any recognized status on their own order.
// Lifecycle ordering is intentionally not enforced; the buyer-side confirm
// path below is the only guarded transition.
func (s *OrderService) UpdateStatus(orderID, sellerID uint, newStatus string) (*OrderOut, error) {
	order, err := s.find(orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, apperr.Permission("access denied")
	}

	status := entity.OrderStatus(newStatus)
	if !status.Valid() {
		return nil, apperr.Validation("invalid order status")
	}

	if err := s.Repo.UpdateFields(order.ID, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	order.Status = status
	o := orderOut(order)
	return &o, nil
}

// ConfirmReceived marks delivery as confirmed by the buyer. Calling it again
// is not an error: the second call reports alreadyConfirmed and changes
// nothing.
func (s *OrderService) ConfirmReceived(orderID, buyerID uint) (*OrderOut, bool, error) {
	order, err := s.find(orderID)
	if err != nil {
		return nil, false, err
	}
	if order.BuyerID != buyerID {
		return nil, false, apperr.Permission("access denied")
	}

	if order.Status != entity.OrderStatusDelivered && order.Status != entity.OrderStatusReceived {
		return nil, false, apperr.Precondition("order not yet delivered")
	}

	if order.IsReceived {
		o := orderOut(order)
		return &o, true, nil
	}

	updates := map[string]any{"is_received": true, "status": entity.OrderStatusReceived}
	if err := s.Repo.UpdateFields(order.ID, updates); err != nil {
		return nil, false, err
	}
	order.IsReceived = true
	order.Status = entity.OrderStatusReceived
	o := orderOut(order)
	return &o, false, nil
}
