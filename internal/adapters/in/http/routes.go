package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the API operations. Path parameters arrive already
// bound and typed.
type ServerInterface interface {
	// (POST /auth/register)
	RegisterUser(ctx echo.Context) error
	// (POST /auth/login)
	Login(ctx echo.Context) error
	// (POST /auth/login-form)
	LoginForm(ctx echo.Context) error
	// (GET /auth/refresh)
	RefreshToken(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders)
	ListAllOrders(ctx echo.Context) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /orders/{orderId}/finalize)
	FinalizeOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /orders/{orderId}/items)
	AddOrderItem(ctx echo.Context, orderID openapi_types.UUID) error
	// (DELETE /orders/items/{itemId})
	RemoveOrderItem(ctx echo.Context, itemID openapi_types.UUID) error
	// (GET /users/{userId}/orders)
	ListUserOrders(ctx echo.Context, userID openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) FinalizeOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.FinalizeOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddOrderItem(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddOrderItem(ctx, orderID)
}

func (w *ServerInterfaceWrapper) RemoveOrderItem(ctx echo.Context) error {
	itemID, err := bindUUIDPath(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.RemoveOrderItem(ctx, itemID)
}

func (w *ServerInterfaceWrapper) ListUserOrders(ctx echo.Context) error {
	userID, err := bindUUIDPath(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.ListUserOrders(ctx, userID)
}

func bindUUIDPath(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// RegisterHandlers mounts the API. Every route except registration and login
// runs behind auth.
func RegisterHandlers(router *echo.Echo, si ServerInterface, auth echo.MiddlewareFunc) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST("/auth/register", si.RegisterUser)
	router.POST("/auth/login", si.Login)
	router.POST("/auth/login-form", si.LoginForm)
	router.GET("/auth/refresh", si.RefreshToken, auth)

	router.POST("/orders", si.CreateOrder, auth)
	router.GET("/orders", si.ListAllOrders, auth)
	router.GET("/orders/:orderId", w.GetOrder, auth)
	router.POST("/orders/:orderId/cancel", w.CancelOrder, auth)
	router.POST("/orders/:orderId/finalize", w.FinalizeOrder, auth)
	router.POST("/orders/:orderId/items", w.AddOrderItem, auth)
	router.DELETE("/orders/items/:itemId", w.RemoveOrderItem, auth)
	router.GET("/users/:userId/orders", w.ListUserOrders, auth)
}
