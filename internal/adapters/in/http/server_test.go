package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/staff"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_statusFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"object not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"authentication", errs.NewAuthenticationError("invalid credentials"), http.StatusUnauthorized},
		{"payload too large", errs.NewPayloadTooLargeError(10, 5), http.StatusRequestEntityTooLarge},
		{"busy", errs.NewBusyError("store barrier"), http.StatusServiceUnavailable},
		{"invalid state", errs.NewInvalidStateError("finalize", "Cancelled"), http.StatusConflict},
		{"overpayment", errs.NewOverpaymentError("card", 100, 50), http.StatusConflict},
		{"unreconciled", errs.NewUnreconciledPaymentError(50, 100), http.StatusConflict},
		{"bad backup format", errs.NewInvalidBackupFormatError("bad signature"), http.StatusUnprocessableEntity},
		{"value invalid", errs.NewValueIsInvalidError("quantity"), http.StatusBadRequest},
		{"value required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid reference", errs.NewInvalidReferenceError("table", "x"), http.StatusBadRequest},
		{"invalid quantity", errs.NewInvalidQuantityError(0), http.StatusBadRequest},
		{"backup io", errs.NewBackupIOError("copy store", assert.AnError), http.StatusInternalServerError},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusFor(tc.err))
		})
	}
}

// stubSessionGuard resolves exactly one known token.
type stubSessionGuard struct {
	token   string
	session ports.Session
}

func (g *stubSessionGuard) Issue(context.Context, *staff.User) (ports.Session, error) {
	return g.session, nil
}

func (g *stubSessionGuard) Authenticate(_ context.Context, token string) (ports.Session, error) {
	if token != g.token {
		return ports.Session{}, errs.NewAuthenticationError("unknown session")
	}
	return g.session, nil
}

func (g *stubSessionGuard) Revoke(context.Context, string) error { return nil }

func (g *stubSessionGuard) RevokeAll(context.Context) error { return nil }

func (g *stubSessionGuard) Sweep(context.Context) int { return 0 }

func Test_requireSession(t *testing.T) {
	session := ports.Session{
		Token:     "good-token",
		UserID:    kernel.NewUUID(),
		Username:  "alice",
		Role:      staff.RoleStaff,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	server := NewServer(Dependencies{
		Sessions: &stubSessionGuard{token: "good-token", session: session},
	})

	next := func(c echo.Context) error {
		assert.Equal(t, session, currentSession(c))
		return c.NoContent(http.StatusOK)
	}

	testCases := []struct {
		name     string
		header   string
		expected int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"wrong token", "Bearer bad-token", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic Zm9vOmJhcg==", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := server.requireSession(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}
