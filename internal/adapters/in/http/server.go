// Package http is the inbound HTTP adapter. Handlers stay thin: decode the
// request, build a command or query, call its handler, map the error to a
// status code. No business rules live here.
package http

import (
	"errors"
	"net/http"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/application/usecases/queries"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/gate"

	"github.com/labstack/echo/v4"
)

// sessionKey is where the auth middleware stores the resolved session on the
// request context.
const sessionKey = "session"

// Server wires HTTP routes to command and query handlers.
type Server struct {
	deps Dependencies
}

// Dependencies collects everything the HTTP surface needs. All fields are
// required.
type Dependencies struct {
	CreateOrder        commands.CreateOrderCommandHandler
	OpenOrder          commands.OpenOrderCommandHandler
	AddOrderItem       commands.AddOrderItemCommandHandler
	RemoveOrderItem    commands.RemoveOrderItemCommandHandler
	ChangeItemQuantity commands.ChangeItemQuantityCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	RecordPayment      commands.RecordPaymentCommandHandler
	FinalizeOrder      commands.FinalizeOrderCommandHandler
	CreateSnapshot     commands.CreateSnapshotCommandHandler
	ImportSnapshot     commands.ImportSnapshotCommandHandler
	RestoreBackup      commands.RestoreBackupCommandHandler
	ClearOrderHistory  commands.ClearOrderHistoryCommandHandler
	Login              commands.LoginCommandHandler

	GetOrder        queries.GetOrderQueryHandler
	GetActiveOrders queries.GetActiveOrdersQueryHandler
	GetMenu         queries.GetMenuQueryHandler
	ListBackups     queries.ListBackupsQueryHandler
	GetBackup       queries.GetBackupQueryHandler
	GetReceipt      queries.GetReceiptQueryHandler

	Sessions       ports.SessionGuard
	StoreGate      *gate.StoreGate
	BackupDir      string
	MaxUploadBytes int64
}

// NewServer creates the HTTP server.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes attaches all routes to the echo instance. Everything except
// login and the health check requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.POST("/api/v1/login", s.Login)

	api := e.Group("/api/v1", s.requireSession)
	api.POST("/logout", s.Logout)

	api.GET("/menu", s.GetMenu)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.DELETE("/orders/history", s.ClearOrderHistory)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/open", s.OpenOrder)
	api.POST("/orders/:orderID/items", s.AddOrderItem)
	api.PATCH("/orders/:orderID/items/:itemID", s.ChangeItemQuantity)
	api.DELETE("/orders/:orderID/items/:itemID", s.RemoveOrderItem)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/payments", s.RecordPayment)
	api.POST("/orders/:orderID/finalize", s.FinalizeOrder)
	api.GET("/orders/:orderID/receipt", s.GetReceipt)

	api.POST("/backups", s.CreateSnapshot)
	api.GET("/backups", s.ListBackups)
	api.POST("/backups/upload", s.UploadSnapshot)
	api.GET("/backups/:backupID/download", s.DownloadSnapshot)
	api.POST("/backups/:backupID/restore", s.RestoreBackup)
}

// requireSession resolves the bearer token to a session and stores it on the
// request context.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return s.writeError(c, errs.NewAuthenticationError("missing bearer token"))
		}

		session, err := s.deps.Sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return s.writeError(c, err)
		}

		c.Set(sessionKey, session)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	const prefix = "Bearer "
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

func currentSession(c echo.Context) ports.Session {
	session, _ := c.Get(sessionKey).(ports.Session)
	return session
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a taxonomy error to its status code. Server-side failures
// are reported without detail so internal paths never leak to clients.
func (s *Server) writeError(c echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		message = "internal error"
	}

	return c.JSON(status, errorBody{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errs.ErrBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrOverpayment),
		errors.Is(err, errs.ErrUnreconciledPayment):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidBackupFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// readQuery runs fn while holding a reader slot of the store gate, so raw
// SQL reads never observe a half-restored store.
func (s *Server) readQuery(c echo.Context, fn func() error) error {
	release, err := s.deps.StoreGate.EnterReader(c.Request().Context())
	if err != nil {
		return s.writeError(c, err)
	}
	defer release()

	return fn()
}
