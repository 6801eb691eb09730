// Package http is the inbound REST adapter. It translates HTTP requests into
// commands and queries and renders every answer in the success/error
// envelope the frontend polls against.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"foodhub/internal/core/application/usecases/commands"
	"foodhub/internal/core/application/usecases/queries"
	"foodhub/internal/core/domain/model/menu"
	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	getStatusUpdatesHandler queries.GetStatusUpdatesQueryHandler

	catalog *menu.Catalog

	// Internal error details are echoed back only in development mode.
	environment string

	now func() time.Time
}

// NewServer creates the HTTP server with the required command and query
// handlers. environment selects error verbosity ("development" echoes
// internal error details in responses).
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getStatusUpdatesHandler queries.GetStatusUpdatesQueryHandler,
	catalog *menu.Catalog,
	environment string,
	now func() time.Time,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getStatusUpdatesHandler:  getStatusUpdatesHandler,
		catalog:                  catalog,
		environment:              environment,
		now:                      now,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Index)
	e.GET("/api/health", s.Health)

	e.GET("/api/menu", s.GetMenuItems)
	e.GET("/api/menu/categories", s.GetCategories)
	e.GET("/api/menu/:id", s.GetMenuItem)

	e.GET("/api/orders", s.GetOrders)
	e.POST("/api/orders", s.PlaceOrder)
	e.GET("/api/orders/:id", s.GetOrder)
	e.PUT("/api/orders/:id/status", s.UpdateOrderStatus)
	e.GET("/api/orders/:id/status-updates", s.GetStatusUpdates)
	e.DELETE("/api/orders/:id", s.DeleteOrder)

	e.RouteNotFound("/*", s.EndpointNotFound)
}

// Index handles GET / - lists the available endpoints.
func (s *Server) Index(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Welcome to FoodHub API",
		"version": apiVersion,
		"endpoints": map[string]any{
			"menu": map[string]string{
				"GET /api/menu":            "Get all menu items",
				"GET /api/menu/categories": "Get all categories",
				"GET /api/menu/:id":        "Get menu item by ID",
			},
			"orders": map[string]string{
				"GET /api/orders":                    "Get all orders",
				"GET /api/orders/:id":                "Get order by ID",
				"POST /api/orders":                   "Create new order",
				"PUT /api/orders/:id/status":         "Update order status",
				"GET /api/orders/:id/status-updates": "Get order status updates",
				"DELETE /api/orders/:id":             "Delete order",
			},
		},
	})
}

// Health handles GET /api/health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"message":   "FoodHub API is running",
		"timestamp": s.now().UTC().Format(time.RFC3339Nano),
	})
}

// EndpointNotFound answers any unrouted path in the standard envelope.
func (s *Server) EndpointNotFound(ctx echo.Context) error {
	return respondError(ctx, http.StatusNotFound, "Endpoint not found")
}

// GetMenuItems handles GET /api/menu - the catalog, optionally filtered by
// ?category= and ?search=.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	category := ctx.QueryParam("category")
	search := ctx.QueryParam("search")
	return respondData(ctx, http.StatusOK, toMenuItemResponses(s.catalog.Items(category, search)))
}

// GetCategories handles GET /api/menu/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	return respondData(ctx, http.StatusOK, s.catalog.Categories())
}

// GetMenuItem handles GET /api/menu/:id.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	item, err := s.catalog.ByID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Menu item not found")
	}
	return respondData(ctx, http.StatusOK, toMenuItemResponse(item))
}

type placeOrderRequest struct {
	Items           []lineItemResponse      `json:"items"`
	DeliveryDetails deliveryDetailsResponse `json:"deliveryDetails"`
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]order.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.LineItem{ID: item.ID, Name: item.Name, Price: item.Price, Quantity: item.Quantity}
	}
	delivery := order.DeliveryDetails{
		Name:    req.DeliveryDetails.Name,
		Address: req.DeliveryDetails.Address,
		Phone:   req.DeliveryDetails.Phone,
	}

	cmd, err := commands.NewPlaceOrderCommand(items, delivery)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondFailure(ctx, err, "Failed to create order")
	}
	return respondDataWithMessage(ctx, http.StatusCreated, toOrderResponse(placed), "Order placed successfully")
}

// GetOrders handles GET /api/orders - all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.respondFailure(ctx, err, "Failed to fetch orders")
	}
	return respondData(ctx, http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondFailure(ctx, err, "Failed to fetch order")
	}
	return respondData(ctx, http.StatusOK, toOrderResponse(aggregate))
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
//
// An unknown order id answers 404 and an illegal transition answers 400, so
// a client can tell the two apart.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return respondError(ctx, http.StatusBadRequest, invalidStatusMessage())
		}
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondFailure(ctx, err, "Failed to update order status")
	}
	return respondDataWithMessage(ctx, http.StatusOK, toOrderResponse(updated), "Order status updated")
}

// GetStatusUpdates handles GET /api/orders/:id/status-updates.
func (s *Server) GetStatusUpdates(ctx echo.Context) error {
	query, err := queries.NewGetStatusUpdatesQuery(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	updates, err := s.getStatusUpdatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondFailure(ctx, err, "Failed to fetch status updates")
	}
	return respondData(ctx, http.StatusOK, toStatusUpdateResponses(updates))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	existed, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondFailure(ctx, err, "Failed to delete order")
	}
	if !existed {
		return respondError(ctx, http.StatusNotFound, "Order not found")
	}
	return ctx.JSON(http.StatusOK, apiResponse{Success: true, Message: "Order deleted successfully"})
}

// respondFailure maps a use-case error onto the HTTP surface: missing
// aggregates answer 404, domain rule violations answer 400, everything else
// is an internal failure reported with the endpoint's public message.
func (s *Server) respondFailure(ctx echo.Context, err error, publicMessage string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		detail := ""
		if s.environment == "development" {
			detail = err.Error()
		}
		return respondInternalError(ctx, publicMessage, detail)
	}
}

func invalidStatusMessage() string {
	literals := make([]string, 0, len(order.StatusSequence()))
	for _, status := range order.StatusSequence() {
		literals = append(literals, status.String())
	}
	return "Invalid status. Must be one of: " + strings.Join(literals, ", ")
}
