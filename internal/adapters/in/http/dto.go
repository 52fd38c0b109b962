package http

import (
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Secret string `json:"secret"`
	Active *bool  `json:"active,omitempty"`
	Admin  bool   `json:"admin"`
}

type LoginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type CreateOrderRequest struct {
	OwnerID openapi_types.UUID `json:"owner_id"`
}

type AddItemRequest struct {
	Quantity  int    `json:"quantity"`
	Flavor    string `json:"flavor"`
	Size      string `json:"size"`
	UnitPrice string `json:"unit_price"`
}

type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

type User struct {
	ID     openapi_types.UUID `json:"id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Active bool               `json:"active"`
	Admin  bool               `json:"admin"`
}

type Item struct {
	ID        openapi_types.UUID `json:"id"`
	OrderID   openapi_types.UUID `json:"order_id"`
	Quantity  int                `json:"quantity"`
	UnitPrice string             `json:"unit_price"`
	Flavor    string             `json:"flavor"`
	Size      string             `json:"size"`
}

type Order struct {
	ID         openapi_types.UUID `json:"id"`
	OwnerID    openapi_types.UUID `json:"owner_id"`
	Status     string             `json:"status"`
	TotalPrice string             `json:"total_price"`
	ItemCount  int                `json:"item_count"`
	Items      []Item             `json:"items"`
}

type AddItemResponse struct {
	Item       Item   `json:"item"`
	TotalPrice string `json:"total_price"`
}

func tokenFromPair(pair commands.TokenPair) Token {
	return Token{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	}
}

func userFromDomain(u *user.User) User {
	return User{
		ID:     u.ID().Bytes(),
		Name:   u.Name(),
		Email:  u.Email(),
		Active: u.IsActive(),
		Admin:  u.IsAdmin(),
	}
}

func itemFromView(v queries.ItemView) Item {
	return Item{
		ID:        v.ID.Bytes(),
		OrderID:   v.OrderID.Bytes(),
		Quantity:  v.Quantity,
		UnitPrice: v.UnitPrice.String(),
		Flavor:    v.Flavor,
		Size:      v.Size,
	}
}

func orderFromView(v queries.OrderView) Order {
	items := make([]Item, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, itemFromView(item))
	}

	return Order{
		ID:         v.ID.Bytes(),
		OwnerID:    v.OwnerID.Bytes(),
		Status:     v.Status.String(),
		TotalPrice: v.TotalPrice.String(),
		ItemCount:  v.ItemCount,
		Items:      items,
	}
}

func orderFromDomain(o *order.Order) Order {
	return orderFromView(queries.NewOrderView(o))
}

func ordersFromViews(views []queries.OrderView) []Order {
	out := make([]Order, 0, len(views))
	for _, v := range views {
		out = append(out, orderFromView(v))
	}
	return out
}
