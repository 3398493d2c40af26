package http

import (
	"net/http"
	"time"

	"restopos/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /api/v1/login. It is the only route besides the health
// check that needs no session.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	session, err := s.deps.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:     session.Token,
		Username:  session.Username,
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/v1/logout, revoking the caller's session.
func (s *Server) Logout(c echo.Context) error {
	if err := s.deps.Sessions.Revoke(c.Request().Context(), currentSession(c).Token); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
