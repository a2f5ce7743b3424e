// Package http exposes the delivery operations API over HTTP.
// It coordinates between echo handlers and application use cases; mutations
// re-read the affected entity through a query handler after commit so clients
// always see the persisted state.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"opspro/internal/core/application/usecases/commands"
	"opspro/internal/core/application/usecases/queries"
	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/order"
	"opspro/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface of the operations dashboard.
type Server struct {
	sessions *SessionStore

	// Command handlers
	loginHandler              commands.LoginCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	assignPartnerHandler      commands.AssignPartnerCommandHandler
	advanceStatusHandler      commands.AdvanceOrderStatusCommandHandler
	createPartnerHandler      commands.CreatePartnerCommandHandler
	toggleAvailabilityHandler commands.ToggleAvailabilityCommandHandler
	updateETAHandler          commands.UpdateETACommandHandler

	// Query handlers
	getOrdersHandler            queries.GetOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getPartnersHandler          queries.GetPartnersQueryHandler
	getPartnerHandler           queries.GetPartnerQueryHandler
	getAvailablePartnersHandler queries.GetAvailablePartnersQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	sessions *SessionStore,
	loginHandler commands.LoginCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	toggleAvailabilityHandler commands.ToggleAvailabilityCommandHandler,
	updateETAHandler commands.UpdateETACommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPartnersHandler queries.GetPartnersQueryHandler,
	getPartnerHandler queries.GetPartnerQueryHandler,
	getAvailablePartnersHandler queries.GetAvailablePartnersQueryHandler,
) *Server {
	return &Server{
		sessions:                    sessions,
		loginHandler:                loginHandler,
		createOrderHandler:          createOrderHandler,
		assignPartnerHandler:        assignPartnerHandler,
		advanceStatusHandler:        advanceStatusHandler,
		createPartnerHandler:        createPartnerHandler,
		toggleAvailabilityHandler:   toggleAvailabilityHandler,
		updateETAHandler:            updateETAHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getPartnersHandler:          getPartnersHandler,
		getPartnerHandler:           getPartnerHandler,
		getAvailablePartnersHandler: getAvailablePartnersHandler,
	}
}

// RegisterRoutes mounts the API under /api.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/login", s.Login)
	api.POST("/auth/logout", s.Logout)
	api.GET("/auth/me", s.Me, s.RequireSession)

	orders := api.Group("/orders", s.RequireSession)
	orders.GET("", s.GetOrders)
	orders.GET("/status/:status", s.GetOrdersByStatus)
	orders.GET("/:id", s.GetOrder)
	orders.POST("", s.CreateOrder, s.RequireManager)
	orders.POST("/:orderId/assign/:partnerId", s.AssignPartner, s.RequireManager)
	orders.PUT("/:orderId/status", s.UpdateOrderStatus)

	partners := api.Group("/partners", s.RequireSession)
	partners.GET("", s.GetPartners)
	partners.GET("/available", s.GetAvailablePartners, s.RequireManager)
	partners.POST("", s.CreatePartner, s.RequireManager)
	partners.PUT("/:partnerId/availability", s.UpdateAvailability)
	partners.PUT("/:partnerId/eta", s.UpdateETA)
}

// Login handles POST /api/auth/login - verifies credentials and starts a session.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrAuth) {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid credentials",
			})
		}
		return writeError(ctx, err)
	}

	token := s.sessions.Create(result.AccountID, result.Username, result.Role, result.PartnerID)
	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, loginResponseFrom(result.AccountID, result.Username, result.Role, result.PartnerID))
}

// Logout handles POST /api/auth/logout - ends the current session.
func (s *Server) Logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil {
		s.sessions.Delete(cookie.Value)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}

// Me handles GET /api/auth/me - describes the current session identity.
func (s *Server) Me(ctx echo.Context) error {
	session := currentSession(ctx)
	return ctx.JSON(http.StatusOK, loginResponseFrom(session.AccountID, session.Username, session.Role, session.PartnerID))
}

// GetOrders handles GET /api/orders - lists all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.respondWithOrders(ctx, queries.NewGetOrdersQuery())
}

// GetOrdersByStatus handles GET /api/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "unknown status "+ctx.Param("status"))
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return s.respondWithOrders(ctx, query)
}

// GetOrder handles GET /api/orders/:id - returns one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// CreateOrder handles POST /api/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderID, req.Items, req.PrepTime)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	newID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, newID, http.StatusCreated)
}

// AssignPartner handles POST /api/orders/:orderId/assign/:partnerId.
func (s *Server) AssignPartner(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	partnerID, err := kernel.IDFromString(ctx.Param("partnerId"))
	if err != nil {
		return badRequest(ctx, "invalid partner id")
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrderStatus handles PUT /api/orders/:orderId/status?status=.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "unknown status "+ctx.QueryParam("status"))
	}

	actor, err := currentSession(ctx).Actor()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, status, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// GetPartners handles GET /api/partners - lists the whole roster.
func (s *Server) GetPartners(ctx echo.Context) error {
	partners, err := s.getPartnersHandler.Handle(
		ctx.Request().Context(), queries.NewGetPartnersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PartnerPayload, len(partners))
	for i, p := range partners {
		response[i] = toPartnerPayload(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailablePartners handles GET /api/partners/available - lists partners
// that can take a new order right now.
func (s *Server) GetAvailablePartners(ctx echo.Context) error {
	partners, err := s.getAvailablePartnersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailablePartnersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PartnerPayload, len(partners))
	for i, p := range partners {
		response[i] = toPartnerPayload(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/partners - onboards a delivery partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req CreatePartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreatePartnerCommand(req.Username, req.Name, req.PhoneNumber, req.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	newID, err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithPartner(ctx, newID, http.StatusCreated)
}

// UpdateAvailability handles PUT /api/partners/:partnerId/availability?isAvailable=.
func (s *Server) UpdateAvailability(ctx echo.Context) error {
	partnerID, err := kernel.IDFromString(ctx.Param("partnerId"))
	if err != nil {
		return badRequest(ctx, "invalid partner id")
	}

	isAvailable, err := strconv.ParseBool(ctx.QueryParam("isAvailable"))
	if err != nil {
		return badRequest(ctx, "isAvailable must be true or false")
	}

	actor, err := currentSession(ctx).Actor()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewToggleAvailabilityCommand(partnerID, isAvailable, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.toggleAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithPartner(ctx, partnerID, http.StatusOK)
}

// UpdateETA handles PUT /api/partners/:partnerId/eta?eta=.
func (s *Server) UpdateETA(ctx echo.Context) error {
	partnerID, err := kernel.IDFromString(ctx.Param("partnerId"))
	if err != nil {
		return badRequest(ctx, "invalid partner id")
	}

	eta, err := strconv.Atoi(ctx.QueryParam("eta"))
	if err != nil {
		return badRequest(ctx, "eta must be a number of minutes")
	}

	actor, err := currentSession(ctx).Actor()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateETACommand(partnerID, eta, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateETAHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithPartner(ctx, partnerID, http.StatusOK)
}

func (s *Server) respondWithOrders(ctx echo.Context, query queries.GetOrdersQuery) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderPayload, len(orders))
	for i, o := range orders {
		response[i] = toOrderPayload(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondWithOrder re-reads an order through the query side and returns it.
// Mutations never echo in-memory state back to the client.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.ID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderResp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toOrderPayload(orderResp))
}

func (s *Server) respondWithPartner(ctx echo.Context, partnerID kernel.ID, status int) error {
	query, err := queries.NewGetPartnerQuery(partnerID)
	if err != nil {
		return writeError(ctx, err)
	}

	partnerResp, err := s.getPartnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toPartnerPayload(partnerResp))
}

func loginResponseFrom(accountID kernel.ID, username string, role kernel.Role, partnerID *kernel.ID) LoginResponse {
	response := LoginResponse{
		ID:       accountID.Int64(),
		Username: username,
		Role:     role.String(),
	}
	if partnerID != nil {
		id := partnerID.Int64()
		response.PartnerID = &id
	}

	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAuth):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPartnerUnavailable):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
