// Package http is the REST transport. It binds requests, builds guarded
// commands and queries, and maps the error taxonomy to status codes.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	cancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	finalizeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.FinalizeOrderCommand) (*order.Order, error)
	}
	addOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderItemCommand) (commands.AddOrderItemResult, error)
	}
	removeOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) (*order.Order, error)
	}
	registerUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	}
	loginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (commands.TokenPair, error)
	}
	refreshTokenHandler interface {
		Handle(ctx context.Context, cmd commands.RefreshTokenCommand) (commands.TokenPair, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	listUserOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]queries.OrderView, error)
	}
	listAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListAllOrdersQuery) ([]queries.OrderView, error)
	}
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateOrder     createOrderHandler
	CancelOrder     cancelOrderHandler
	FinalizeOrder   finalizeOrderHandler
	AddOrderItem    addOrderItemHandler
	RemoveOrderItem removeOrderItemHandler
	RegisterUser    registerUserHandler
	Login           loginHandler
	RefreshToken    refreshTokenHandler
	GetOrder        getOrderHandler
	ListUserOrders  listUserOrdersHandler
	ListAllOrders   listAllOrdersHandler
}

// Server implements ServerInterface.
type Server struct {
	h    Handlers
	errw errorWriter
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, registry *metrics.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:    handlers,
		errw: errorWriter{metrics: registry, logger: logger.With("component", "http")},
	}
}

// RegisterUser handles POST /auth/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var body RegisterUserRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), body.Name, body.Email, body.Secret, active, body.Admin)
	if err != nil {
		return s.errw.write(c, "register", err)
	}

	registered, err := s.h.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errw.write(c, "register", err)
	}

	return c.JSON(http.StatusCreated, userFromDomain(registered))
}

// Login handles POST /auth/login.
func (s *Server) Login(c echo.Context) error {
	var body LoginRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pair, err := s.login(c, body.Email, body.Secret)
	if err != nil {
		return s.errw.write(c, "login", err)
	}

	return c.JSON(http.StatusOK, tokenFromPair(pair))
}

// LoginForm handles POST /auth/login-form for the docs UI. Only the access
// token is returned.
func (s *Server) LoginForm(c echo.Context) error {
	pair, err := s.login(c, c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return s.errw.write(c, "login", err)
	}

	pair.RefreshToken = ""
	return c.JSON(http.StatusOK, tokenFromPair(pair))
}

func (s *Server) login(c echo.Context, email, secret string) (commands.TokenPair, error) {
	cmd, err := commands.NewLoginCommand(email, secret)
	if err != nil {
		return commands.TokenPair{}, err
	}
	return s.h.Login.Handle(c.Request().Context(), cmd)
}

// RefreshToken handles GET /auth/refresh. The bearer token is the refresh
// token.
func (s *Server) RefreshToken(c echo.Context) error {
	cmd, err := commands.NewRefreshTokenCommand(actorFrom(c))
	if err != nil {
		return s.errw.write(c, "refresh", err)
	}

	pair, err := s.h.RefreshToken.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errw.write(c, "refresh", err)
	}

	return c.JSON(http.StatusOK, tokenFromPair(pair))
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body CreateOrderRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUIDFromGoogle(body.OwnerID), actorFrom(c))
	if err != nil {
		return s.errw.write(c, "create_order", err)
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errw.write(c, "create_order", err)
	}

	return c.JSON(http.StatusCreated, orderFromDomain(created))
}

// ListAllOrders handles GET /orders.
func (s *Server) ListAllOrders(c echo.Context) error {
	query, err := queries.NewListAllOrdersQuery(actorFrom(c))
	if err != nil {
		return s.errw.write(c, "list_all_orders", err)
	}

	views, err := s.h.ListAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errw.write(c, "list_all_orders", err)
	}

	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(c echo.Context, orderID openapi_types.UUID) error {
	query, err := queries.NewGetOrderQuery(kernel.UUIDFromGoogle(orderID), actorFrom(c))
	if err != nil {
		return s.errw.write(c, "get_order", err)
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errw.write(c, "get_order", err)
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// CancelOrder handles POST /orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context, orderID openapi_types.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(kernel.UUIDFromGoogle(orderID), actorFrom(c))
	if err != nil {
		return s.errw.write(c, "cancel_order", err)
	}

	cancelled, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errw.write(c, "cancel_order", err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// FinalizeOrder handles POST /orders/{orderId}/finalize.
func (s *Server) FinalizeOrder(c echo.Context, orderID openapi_types.UUID) error {
	cmd, err := commands.NewFinalizeOrderCommand(kernel.UUIDFromGoogle(orderID), actorFrom(c))
	if err != nil {
		return s.errw.write(c, "finalize_order", err)
	}

	finalized, err := s.h.FinalizeOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errw.write(c, "finalize_order", err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(finalized))
}

// AddOrderItem handles POST /orders/{orderId}/items.
func (s *Server) AddOrderItem(c echo.Context, orderID openapi_types.UUID) error {
	var body AddItemRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	unitPrice, err := kernel.MoneyFromString(body.UnitPrice)
	if err != nil {
		return s.errw.write(c, "add_item", errs.NewValueIsInvalidErrorWithCause("unit_price", err))
	}

	cmd, err := commands.NewAddOrderItemCommand(
		kernel.UUIDFromGoogle(orderID),
		kernel.NewUUID(),
		body.Quantity,
		unitPrice,
		body.Flavor,
		body.Size,
		actorFrom(c),
	)
	if err != nil {
		return s.errw.write(c, "add_item", err)
	}

	result, err := s.h.AddOrderItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errw.write(c, "add_item", err)
	}

	view := queries.NewOrderView(result.Order)
	var added Item
	for _, item := range view.Items {
		if item.ID.IsEqual(result.Item.ID()) {
			added = itemFromView(item)
		}
	}

	return c.JSON(http.StatusCreated, AddItemResponse{Item: added, TotalPrice: view.TotalPrice.String()})
}

// RemoveOrderItem handles DELETE /orders/items/{itemId}.
func (s *Server) RemoveOrderItem(c echo.Context, itemID openapi_types.UUID) error {
	cmd, err := commands.NewRemoveOrderItemCommand(kernel.UUIDFromGoogle(itemID), actorFrom(c))
	if err != nil {
		return s.errw.write(c, "remove_item", err)
	}

	updated, err := s.h.RemoveOrderItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errw.write(c, "remove_item", err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(updated))
}

// ListUserOrders handles GET /users/{userId}/orders.
func (s *Server) ListUserOrders(c echo.Context, userID openapi_types.UUID) error {
	query, err := queries.NewListUserOrdersQuery(kernel.UUIDFromGoogle(userID), actorFrom(c))
	if err != nil {
		return s.errw.write(c, "list_user_orders", err)
	}

	views, err := s.h.ListUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errw.write(c, "list_user_orders", err)
	}

	return c.JSON(http.StatusOK, ordersFromViews(views))
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
