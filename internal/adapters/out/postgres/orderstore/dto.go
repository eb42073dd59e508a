// Package orderstore provides a PostgreSQL-backed implementation of the
// OrderStore port. It exists for local development and self-hosted
// deployments where the board owns its own order database instead of
// talking to the hosted order service; both implementations are
// interchangeable behind the port.
package orderstore

import (
	"sort"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        int       `gorm:"index"`
	PlacedAt      time.Time `gorm:"index"`
	OrderType     int
	PaymentStatus int
	Items         []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Notes         string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one line item row belonging to an order.
// Position preserves the item sequence as placed.
type LineItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Position int
	Name     string
	Quantity int
	AddOns   []string `gorm:"serializer:json"`
	Notes    string
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtos := make([]LineItemDTO, len(items))
	for i, item := range items {
		dtos[i] = LineItemDTO{
			OrderID:  o.ID().Bytes(),
			Position: i,
			Name:     item.Name(),
			Quantity: item.Quantity(),
			AddOns:   item.AddOns(),
			Notes:    item.Notes(),
		}
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		Status:        int(o.Status()),
		PlacedAt:      o.PlacedAt(),
		OrderType:     int(o.OrderType()),
		PaymentStatus: int(o.PaymentStatus()),
		Items:         dtos,
		Notes:         o.Notes(),
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, so corrupt rows fail validation instead of leaking through.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.Name, itemDTO.Quantity, itemDTO.AddOns, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		dto.PlacedAt,
		order.Type(dto.OrderType),
		order.PaymentStatus(dto.PaymentStatus),
		items,
		dto.Notes,
	)
}
