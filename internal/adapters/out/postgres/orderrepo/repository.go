package orderrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects saved aggregates so their events reach the outbox.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates the repository. tracker may be nil for
// read-only use outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update writes the status and total, inserts new items and deletes removed
// ones. Items are immutable once stored.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":      dto.Status,
		"total_price": dto.TotalPrice,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	var stored []uuid.UUID
	if err := db.Model(&ItemDTO{}).Where("order_id = ?", dto.ID).Pluck("id", &stored).Error; err != nil {
		return err
	}

	storedSet := make(map[uuid.UUID]struct{}, len(stored))
	for _, id := range stored {
		storedSet[id] = struct{}{}
	}

	keep := make([]uuid.UUID, 0, len(dto.Items))
	added := make([]ItemDTO, 0, len(dto.Items))
	for _, item := range dto.Items {
		keep = append(keep, item.ID)
		if _, ok := storedSet[item.ID]; !ok {
			added = append(added, item)
		}
	}

	removed := db.Where("order_id = ?", dto.ID)
	if len(keep) > 0 {
		removed = removed.Where("id NOT IN ?", keep)
	}
	if err := removed.Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	if len(added) > 0 {
		if err := db.Create(&added).Error; err != nil {
			return err
		}
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByItemID retrieves the order owning itemID.
func (r *GormOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item ItemDTO
	if err := r.db.WithContext(ctx).Select("order_id").First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", itemID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(item.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

// ListByOwner returns the orders of ownerID, oldest first.
func (r *GormOrderRepository) ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	return r.list(r.withItems(ctx).Where("owner_id = ?", ownerID.Bytes()))
}

// ListAll returns every order, oldest first.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.list(r.withItems(ctx))
}

func (r *GormOrderRepository) list(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
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

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
