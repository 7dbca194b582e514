// Package http exposes the order lifecycle over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order API.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	updateItemStatusHandler  commands.UpdateItemStatusCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	listOrdersHandler           queries.ListOrdersQueryHandler
	orderStatusDurationsHandler queries.GetOrderStatusDurationsQueryHandler
	itemStatusDurationsHandler  queries.GetItemStatusDurationsQueryHandler
	hourlyThroughputHandler     queries.GetHourlyThroughputQueryHandler
	customerOrderCountsHandler  queries.GetCustomerOrderCountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	orderStatusDurationsHandler queries.GetOrderStatusDurationsQueryHandler,
	itemStatusDurationsHandler queries.GetItemStatusDurationsQueryHandler,
	hourlyThroughputHandler queries.GetHourlyThroughputQueryHandler,
	customerOrderCountsHandler queries.GetCustomerOrderCountsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		updateItemStatusHandler:     updateItemStatusHandler,
		getOrderHandler:             getOrderHandler,
		listOrdersHandler:           listOrdersHandler,
		orderStatusDurationsHandler: orderStatusDurationsHandler,
		itemStatusDurationsHandler:  itemStatusDurationsHandler,
		hourlyThroughputHandler:     hourlyThroughputHandler,
		customerOrderCountsHandler:  customerOrderCountsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:order_id", s.GetOrder)
	api.PATCH("/orders/:order_id", s.UpdateOrderStatus)
	api.PATCH("/orders/:order_id/items/:plu", s.UpdateItemStatus)

	api.GET("/analytics/order-status-durations", s.GetOrderStatusDurations)
	api.GET("/analytics/item-status-durations", s.GetItemStatusDurations)
	api.GET("/analytics/hourly-throughput", s.GetHourlyThroughput)
	api.GET("/analytics/customer-order-counts", s.GetCustomerOrderCounts)
}

// CreateOrder handles POST /api/v1/orders - registers an incoming channel order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if req.ID != nil {
		parsed, err := kernel.UUIDFromString(*req.ID)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderID = parsed
	}

	account, err := kernel.UUIDFromString(req.Account)
	if err != nil {
		return badRequest(ctx, "Invalid account: "+err.Error())
	}

	brandID, err := kernel.UUIDFromString(req.BrandID)
	if err != nil {
		return badRequest(ctx, "Invalid brand id: "+err.Error())
	}

	status, err := order.StatusFromOrdinal(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	seeds := make([]commands.StatusSeed, 0, len(req.StatusHistory))
	for _, seed := range req.StatusHistory {
		seedStatus, seedErr := order.StatusFromOrdinal(seed.Status)
		if seedErr != nil {
			return badRequest(ctx, "Invalid status history: "+seedErr.Error())
		}
		seeds = append(seeds, commands.StatusSeed{Status: seedStatus, Timestamp: seed.Timestamp})
	}

	items := make([]commands.NewOrderItem, 0, len(req.Items))
	for _, payload := range req.Items {
		spec := commands.NewOrderItem{
			PLU:      payload.PLU,
			Name:     payload.Name,
			Quantity: payload.Quantity,
		}
		if payload.Status != nil {
			itemStatus, itemErr := item.StatusFromOrdinal(*payload.Status)
			if itemErr != nil {
				return badRequest(ctx, "Invalid item status: "+itemErr.Error())
			}
			spec.Status = itemStatus
		}
		items = append(items, spec)
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, account, brandID, req.ChannelOrderID,
		req.Customer.Name, req.Customer.PhoneNumber,
		req.DeliveryAddress.City, req.DeliveryAddress.Street, req.DeliveryAddress.PostalCode,
		req.PickupTime, status, seeds, items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ListOrders handles GET /api/v1/orders - lists orders with optional filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := parseStatusParam(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		status = &parsed
	}

	var account *kernel.UUID
	if raw := ctx.QueryParam("account"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid account filter: "+err.Error())
		}
		account = &parsed
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from filter: "+err.Error())
	}

	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to filter: "+err.Error())
	}

	query, err := queries.NewListOrdersQuery(status, account, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid filters: "+err.Error())
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:order_id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:order_id - transitions an
// order and cascades the status onto its items.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromOrdinal(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// UpdateItemStatus handles PATCH /api/v1/orders/:order_id/items/:plu -
// transitions a single item of an order.
func (s *Server) UpdateItemStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := item.StatusFromOrdinal(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateItemStatusCommand(orderID, ctx.Param("plu"), status)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	updated, err := s.updateItemStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemToResponse(updated))
}

// GetOrderStatusDurations handles GET /api/v1/analytics/order-status-durations.
func (s *Server) GetOrderStatusDurations(ctx echo.Context) error {
	durations, err := s.orderStatusDurationsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetOrderStatusDurationsQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, durationsToResponse(durations))
}

// GetItemStatusDurations handles GET /api/v1/analytics/item-status-durations.
func (s *Server) GetItemStatusDurations(ctx echo.Context) error {
	durations, err := s.itemStatusDurationsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetItemStatusDurationsQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, durationsToResponse(durations))
}

// GetHourlyThroughput handles GET /api/v1/analytics/hourly-throughput.
func (s *Server) GetHourlyThroughput(ctx echo.Context) error {
	buckets, err := s.hourlyThroughputHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetHourlyThroughputQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]HourlyThroughputResponse, 0, len(buckets))
	for _, bucket := range buckets {
		response = append(response, HourlyThroughputResponse{
			Hour:       bucket.Hour,
			OrderCount: bucket.OrderCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrderCounts handles GET /api/v1/analytics/customer-order-counts.
func (s *Server) GetCustomerOrderCounts(ctx echo.Context) error {
	counts, err := s.customerOrderCountsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetCustomerOrderCountsQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CustomerOrderCountResponse, 0, len(counts))
	for _, count := range counts {
		response = append(response, CustomerOrderCountResponse{
			Account:      count.Account.String(),
			OrderCount:   count.OrderCount,
			FirstOrderAt: count.FirstOrderAt,
			LastOrderAt:  count.LastOrderAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP status codes. Validation
// failures surface as 400 because the only way a restored aggregate or a
// constructed command rejects input is bad caller data.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// parseStatusParam accepts the integer ordinal used everywhere else on the
// wire.
func parseStatusParam(raw string) (order.Status, error) {
	ordinal, err := strconv.Atoi(raw)
	if err != nil {
		return order.Unknown, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	return order.StatusFromOrdinal(ordinal)
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
