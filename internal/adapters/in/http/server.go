// Package http exposes the pickup lifecycle over a REST API.
// Request actors come from the JWT middleware; transition rejections map
// onto HTTP statuses by their guard reason.
package http

import (
	"errors"
	"net/http"
	"time"

	"jelantah/internal/core/application/usecases/commands"
	"jelantah/internal/core/application/usecases/queries"
	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string `json:"customer_id"`
	EstimatedLiters int    `json:"estimated_liters"`
}

// QuickPickupRequest is the body for POST /api/v1/orders/quick. It
// registers a walk-in customer together with their first order.
type QuickPickupRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	District        string `json:"district"`
	City            string `json:"city"`
	EstimatedLiters int    `json:"estimated_liters"`
	ReferredBy      string `json:"referred_by,omitempty"`
}

// QuickPickupResponse returns the identifiers created by the quick flow.
type QuickPickupResponse struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
}

// AssignCourierRequest is the body for POST /api/v1/orders/:id/assign.
// Couriers claiming a pickup may omit courier_id; it defaults to the
// acting courier.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// CompletePickupRequest is the body for POST /api/v1/orders/:id/complete.
type CompletePickupRequest struct {
	ActualLiters   int    `json:"actual_liters"`
	PickupPhotoRef string `json:"pickup_photo_ref"`
}

// MarkPaidRequest is the body for POST /api/v1/orders/:id/pay.
type MarkPaidRequest struct {
	PaymentProofRef string `json:"payment_proof_ref"`
}

// UpdateCustomerRequest is the body for PUT /api/v1/customers/:id.
// Omitting share_location or bank_account clears them.
type UpdateCustomerRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	District      string `json:"district"`
	City          string `json:"city"`
	ShareLocation string `json:"share_location"`
	BankAccount   string `json:"bank_account"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ActiveOrderResponse is one row of GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	CustomerDistrict string    `json:"customer_district"`
	CustomerCity     string    `json:"customer_city"`
	EstimatedLiters  int       `json:"estimated_liters"`
	ActualLiters     *int      `json:"actual_liters,omitempty"`
	CourierID        string    `json:"courier_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	quickPickupHandler    commands.QuickPickupCommandHandler
	assignCourierHandler  commands.AssignCourierCommandHandler
	startPickupHandler    commands.StartPickupCommandHandler
	completePickupHandler commands.CompletePickupCommandHandler
	verifyOrderHandler    commands.VerifyOrderCommandHandler
	markOrderPaidHandler  commands.MarkOrderPaidCommandHandler
	updateCustomerHandler commands.UpdateCustomerCommandHandler

	// Query handlers
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getBillingReportHandler queries.GetBillingReportQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	quickPickupHandler commands.QuickPickupCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	startPickupHandler commands.StartPickupCommandHandler,
	completePickupHandler commands.CompletePickupCommandHandler,
	verifyOrderHandler commands.VerifyOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getBillingReportHandler queries.GetBillingReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		quickPickupHandler:      quickPickupHandler,
		assignCourierHandler:    assignCourierHandler,
		startPickupHandler:      startPickupHandler,
		completePickupHandler:   completePickupHandler,
		verifyOrderHandler:      verifyOrderHandler,
		markOrderPaidHandler:    markOrderPaidHandler,
		updateCustomerHandler:   updateCustomerHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getBillingReportHandler: getBillingReportHandler,
	}
}

// RegisterRoutes mounts all endpoints behind the JWT middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	api := e.Group("/api/v1", ActorMiddleware(jwtSecret))

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/quick", s.QuickPickup)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/start", s.StartPickup)
	api.POST("/orders/:id/complete", s.CompletePickup)
	api.POST("/orders/:id/verify", s.VerifyOrder)
	api.POST("/orders/:id/pay", s.MarkOrderPaid)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/billing/report", s.GetBillingReport)
	api.PUT("/customers/:id", s.UpdateCustomer)
}

// CreateOrder handles POST /api/v1/orders - registers a pickup request.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, request.EstimatedLiters)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// QuickPickup handles POST /api/v1/orders/quick - registers a walk-in
// customer and their first pickup in one call. Office-only.
func (s *Server) QuickPickup(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if actor.Role() != kernel.RoleAdmin {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Quick pickup is restricted to admins",
		})
	}

	var request QuickPickupRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var referrerID *kernel.UUID
	if request.ReferredBy != "" {
		id, err := kernel.UUIDFromString(request.ReferredBy)
		if err != nil {
			return badRequest(ctx, "Invalid referrer id")
		}
		referrerID = &id
	}

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewQuickPickupCommand(
		orderID, customerID,
		request.Name, request.Phone, request.Address, request.District, request.City,
		request.EstimatedLiters, referrerID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid quick pickup data: "+err.Error())
	}

	if handleErr := s.quickPickupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, QuickPickupResponse{
		OrderID:    orderID.String(),
		CustomerID: customerID.String(),
	})
}

// AssignCourier handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := actor.ID()
	if request.CourierID != "" {
		if courierID, err = kernel.UUIDFromString(request.CourierID); err != nil {
			return badRequest(ctx, "Invalid courier id")
		}
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, actor, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPickup handles POST /api/v1/orders/:id/start.
func (s *Server) StartPickup(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewStartPickupCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid start data: "+err.Error())
	}

	if handleErr := s.startPickupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePickup handles POST /api/v1/orders/:id/complete.
func (s *Server) CompletePickup(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CompletePickupRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompletePickupCommand(orderID, actor, request.ActualLiters, request.PickupPhotoRef)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completePickupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyOrder handles POST /api/v1/orders/:id/verify.
func (s *Server) VerifyOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewVerifyOrderCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid verification data: "+err.Error())
	}

	if handleErr := s.verifyOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:id/pay.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request MarkPaidRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, actor, request.PaymentProofRef)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCustomer handles PUT /api/v1/customers/:id - edits a customer
// profile. Admins may edit anyone; customers may edit only themselves.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	allowed := actor.Role() == kernel.RoleAdmin ||
		(actor.Role() == kernel.RoleCustomer && actor.ID().IsEqual(customerID))
	if !allowed {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Profile edits are restricted to admins and the customer themselves",
		})
	}

	var request UpdateCustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID,
		request.Name, request.Phone, request.Address, request.District, request.City,
		request.ShareLocation, request.BankAccount,
	)
	if err != nil {
		return badRequest(ctx, "Invalid profile data: "+err.Error())
	}

	if handleErr := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
// Couriers see only their own assignments; other roles see everything.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var (
		query queries.GetActiveOrdersQuery
		err   error
	)
	if actor.Role() == kernel.RoleCourier {
		query, err = queries.NewGetActiveOrdersQueryForCourier(actor.ID())
		if err != nil {
			return badRequest(ctx, "Invalid courier filter")
		}
	} else {
		query = queries.NewGetActiveOrdersQuery()
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = ActiveOrderResponse{
			ID:               row.ID.String(),
			Status:           row.Status,
			CustomerName:     row.CustomerName,
			CustomerPhone:    row.CustomerPhone,
			CustomerDistrict: row.CustomerDistrict,
			CustomerCity:     row.CustomerCity,
			EstimatedLiters:  row.EstimatedLiters,
			ActualLiters:     row.ActualLiters,
			CreatedAt:        row.CreatedAt,
		}
		if row.CourierID != nil {
			response[i].CourierID = row.CourierID.String()
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBillingReport handles GET /api/v1/billing/report.
// Only the office settles payouts, so the report is admin-only.
func (s *Server) GetBillingReport(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if actor.Role() != kernel.RoleAdmin {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Billing report is restricted to admins",
		})
	}

	report, err := s.getBillingReportHandler.Handle(ctx.Request().Context(), queries.NewGetBillingReportQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build billing report",
		})
	}

	return ctx.JSON(http.StatusOK, report)
}

// writeCommandError maps application errors onto HTTP statuses. State
// mismatches are conflicts the client may retry after refreshing; role
// denials are forbidden; payload rejections are bad requests.
func writeCommandError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
		})
	case errors.Is(err, order.ErrStateMismatch):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrRoleDenied):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrPayloadInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Missing authenticated actor",
	})
}
