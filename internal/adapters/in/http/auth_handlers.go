package http

import (
	"errors"
	"net/http"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/auth"
	"brokerage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=32"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// Register creates a new customer account and sends a verification code.
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		accountID, req.Email, req.Username, req.Phone, req.FirstName, req.LastName, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.RegisterAccount.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": accountID.String()})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and issues a token pair. A wrong email and a
// wrong password produce the same response.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	query, err := queries.NewGetAccountByEmailQuery(req.Email)
	if err != nil {
		return s.respondError(c, err)
	}

	account, err := s.queries.GetAccountByEmail.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return s.respondError(c, err)
	}

	if err := auth.ComparePassword(account.PasswordHash, req.Password); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	pair, err := s.issuer.IssuePair(account.ID.String(), account.DisplayName(), account.Staff)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *Server) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claims, err := s.issuer.Validate(req.RefreshToken, auth.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	pair, err := s.issuer.IssuePair(claims.AccountID, claims.DisplayName, claims.Staff)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

type verifyEmailRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	Code      string `json:"code" validate:"required"`
}

// VerifyEmail confirms the account's email address with the emailed code.
func (s *Server) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	accountID, err := kernel.UUIDFromString(req.AccountID)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	cmd, err := commands.NewVerifyEmailCommand(accountID, req.Code)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.VerifyEmail.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
