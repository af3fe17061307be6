package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/auth"
	"brokerage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	issuer := auth.NewIssuer("test-secret", time.Minute, time.Hour)
	return NewServer(Commands{}, Queries{}, issuer, log)
}

func TestAuthMiddleware_ValidToken_SetsActor(t *testing.T) {
	s := testServer()
	accountID := kernel.NewUUID()

	pair, err := s.issuer.IssuePair(accountID.String(), "Jane Doe", false)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := s.authMiddleware(func(c echo.Context) error {
		actor, err := actorFromContext(c)
		require.NoError(t, err)
		require.True(t, actor.ID().IsEqual(accountID))
		require.Equal(t, "Jane Doe", actor.DisplayName())
		require.False(t, actor.IsStaff())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingToken_Unauthorized(t *testing.T) {
	s := testServer()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := s.authMiddleware(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	s := testServer()

	pair, err := s.issuer.IssuePair(kernel.NewUUID().String(), "Jane Doe", false)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+pair.RefreshToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := s.authMiddleware(func(c echo.Context) error { return nil })

	err = handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRespondError_MapsDomainErrors(t *testing.T) {
	s := testServer()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError("not yours"), http.StatusForbidden},
		{"invalid value", errs.NewValueIsRequiredError("email"), http.StatusBadRequest},
		{"bad transition", errs.NewInvalidTransitionError("delivered", "pending"), http.StatusBadRequest},
		{"already terminal", errs.NewAlreadyTerminalError("closed"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, s.respondError(c, tt.err))
			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	s := testServer()

	pair, err := s.issuer.IssuePair(kernel.NewUUID().String(), "Jane Doe", true)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = newRequestValidator()
	body := `{"refresh_token":"` + pair.RefreshToken + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.Refresh(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")
	require.Contains(t, rec.Body.String(), "refresh_token")
}

func TestOptionalAuthMiddleware_AnonymousGetsGuest(t *testing.T) {
	s := testServer()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := s.optionalAuthMiddleware(func(c echo.Context) error {
		actor := actorOrGuest(c)
		require.False(t, actor.IsStaff())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuthMiddleware_TokenStillResolved(t *testing.T) {
	s := testServer()

	pair, err := s.issuer.IssuePair(kernel.NewUUID().String(), "Sam Staff", true)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := s.optionalAuthMiddleware(func(c echo.Context) error {
		actor := actorOrGuest(c)
		require.True(t, actor.IsStaff())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuthMiddleware_InvalidTokenRejected(t *testing.T) {
	s := testServer()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := s.optionalAuthMiddleware(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCreateOrderRequest_DeliveryFields(t *testing.T) {
	v := newRequestValidator()

	req := createOrderRequest{
		ProductName:     "Wireless headphones",
		Quantity:        2,
		UnitPrice:       "49.90",
		DeliveryAddress: "1 Main St",
		DeliveryPhone:   "+14155550123",
		DeliveryNotes:   "leave at the door",
	}
	require.NoError(t, v.Validate(&req))

	req.DeliveryPhone = "not-a-phone"
	require.Error(t, v.Validate(&req))
}

func TestDeclarationDetailsRequest_ToParams_InvalidInputs(t *testing.T) {
	base := func() declarationDetailsRequest {
		return declarationDetailsRequest{
			DeclarationType:   "import",
			PassportSeries:    "AB",
			PassportNumber:    "1234567",
			PassportIssueDate: "2020-01-10",
			PassportExpiry:    "2030-01-10",
			PassportAuthority: "Migration Service",
			ContactName:       "Jane Doe",
			ContactPhone:      "+14155550123",
			DeliveryAddress:   "1 Main St",
			DeliveryCountry:   "US",
			DeliveryCity:      "Springfield",
			ProductName:       "Wireless headphones",
			ProductQuantity:   2,
			ProductUnit:       "pcs",
			ProductValue:      "100",
			Currency:          "USD",
		}
	}

	valid := base()
	_, err := valid.toParams(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	badDate := base()
	badDate.PassportIssueDate = "10.01.2020"
	_, err = badDate.toParams(kernel.NewUUID(), kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	badValue := base()
	badValue.ProductValue = "lots"
	_, err = badValue.toParams(kernel.NewUUID(), kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	badOrder := base()
	badOrder.OrderID = "not-a-uuid"
	_, err = badOrder.toParams(kernel.NewUUID(), kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRequestValidator_PhoneRule(t *testing.T) {
	v := newRequestValidator()

	type payload struct {
		Phone string `validate:"omitempty,phone"`
	}

	require.NoError(t, v.Validate(&payload{Phone: "+14155550123"}))
	require.NoError(t, v.Validate(&payload{Phone: ""}))
	require.Error(t, v.Validate(&payload{Phone: "not-a-phone"}))
}
