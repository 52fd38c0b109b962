// Package orderrepo persists the order aggregate and its items.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Items are a child table removed with the order.
// Price columns are unconstrained numeric; kernel.Money bounds the scale to
// cents, so values are stored exactly.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status     int             `gorm:"type:smallint;not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt  time.Time       `gorm:"not null;index"`
	Items      []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. Seq keeps items in insertion order across
// removals.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Seq       int64           `gorm:"autoIncrement;not null"`
	Quantity  int             `gorm:"type:bigint;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"`
	Flavor    string          `gorm:"type:varchar(255);not null"`
	Size      string          `gorm:"type:varchar(255);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, aggregate.ItemCount())
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(orderID, item))
	}

	return OrderDTO{
		ID:         orderID,
		OwnerID:    aggregate.OwnerID().Bytes(),
		Status:     int(aggregate.Status()),
		TotalPrice: aggregate.TotalPrice().Amount(),
		Items:      items,
	}
}

func itemFromDomain(orderID uuid.UUID, item *order.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID().Bytes(),
		OrderID:   orderID,
		Quantity:  item.Quantity(),
		UnitPrice: item.UnitPrice().Amount(),
		Flavor:    item.Flavor(),
		Size:      item.Size(),
	}
}

// toDomain rebuilds the aggregate. RestoreOrder rejects rows whose stored
// total disagrees with their items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, ownerID, order.Status(dto.Status), total, items)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, dto.Quantity, unitPrice, dto.Flavor, dto.Size)
}
