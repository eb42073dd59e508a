package orderstore

import (
	"context"
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderStore implements the OrderStore port on top of PostgreSQL.
//
// Like the hosted order service, it enforces the workflow rules
// server-side: a submitted transition is re-validated against the
// persisted status inside a transaction, so two racing clients cannot both
// advance the same order.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM-backed order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// Add persists a new order. Order intake (POS, online ordering) writes
// through this; the board itself never creates orders.
func (s *GormOrderStore) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return s.db.WithContext(ctx).Create(&dto).Error
}

// FetchOrders retrieves the order set matching the filter, oldest first.
func (s *GormOrderStore) FetchOrders(ctx context.Context, filter ports.Filter) ([]*order.Order, error) {
	query := s.db.WithContext(ctx).Model(&OrderDTO{}).Preload("Items").Order("placed_at, id")

	if len(filter.Statuses) > 0 {
		statuses := make([]int, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = int(status)
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.OrderType != order.TypeUnknown {
		query = query.Where("order_type = ?", int(filter.OrderType))
	}
	if filter.PaymentStatus != order.PaymentUnknown {
		query = query.Where("payment_status = ?", int(filter.PaymentStatus))
	}
	if filter.DateFrom != nil {
		query = query.Where("placed_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("placed_at <= ?", *filter.DateTo)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// SubmitStatusChange moves one order to the target status, re-validating
// the transition against the persisted status inside a transaction.
func (s *GormOrderStore) SubmitStatusChange(
	ctx context.Context,
	id kernel.UUID,
	target order.Status,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var changed *order.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		if err := tx.Preload("Items").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order", id.String())
			}
			return err
		}

		o, err := toDomain(dto)
		if err != nil {
			return err
		}

		if err = o.ChangeStatus(target); err != nil {
			return err
		}

		if err = tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Update("status", int(o.Status())).Error; err != nil {
			return err
		}

		changed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return changed, nil
}
