package storeapi

import (
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
)

// orderDTO mirrors one order object as the store serializes it.
type orderDTO struct {
	ID            string        `json:"id"`
	Status        string        `json:"status"`
	PlacedAt      time.Time     `json:"placedAt"`
	OrderType     string        `json:"orderType"`
	PaymentStatus string        `json:"paymentStatus"`
	Items         []lineItemDTO `json:"items"`
	Notes         string        `json:"notes,omitempty"`
}

type lineItemDTO struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	AddOns   []string `json:"addOns,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// statusChangeRequest is the body of a status change submission.
type statusChangeRequest struct {
	Status string `json:"status"`
}

// toDomain rehydrates a fetched order through the domain constructors, so
// malformed store data is rejected at the adapter boundary.
func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromName(dto.Status)
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromName(dto.OrderType)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromName(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		lineItem, itemErr := order.NewLineItem(item.Name, item.Quantity, item.AddOns, item.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, lineItem)
	}

	return order.RestoreOrder(id, status, dto.PlacedAt, orderType, paymentStatus, items, dto.Notes)
}
