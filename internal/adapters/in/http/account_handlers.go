package http

import (
	"net/http"
	"time"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type accountResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Phone         string    `json:"phone,omitempty"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	ClientCode    string    `json:"client_code"`
	Staff         bool      `json:"staff"`
	EmailVerified bool      `json:"email_verified"`
	Country       string    `json:"country,omitempty"`
	City          string    `json:"city,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAccountResponse(r queries.GetAccountQueryResponse) accountResponse {
	return accountResponse{
		ID:            r.ID.String(),
		Email:         r.Email,
		Username:      r.Username,
		Phone:         r.Phone,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		ClientCode:    r.ClientCode,
		Staff:         r.Staff,
		EmailVerified: r.EmailVerified,
		Country:       r.Country,
		City:          r.City,
		Address:       r.Address,
		CreatedAt:     r.CreatedAt,
	}
}

// GetProfile returns the authenticated caller's own account.
func (s *Server) GetProfile(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAccountQuery(actor, actor.ID())
	if err != nil {
		return s.respondError(c, err)
	}

	account, err := s.queries.GetAccount.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAccountResponse(account))
}

type updateProfileRequest struct {
	Phone     string `json:"phone" validate:"omitempty,phone"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Country   string `json:"country" validate:"max=100"`
	City      string `json:"city" validate:"max=100"`
	Address   string `json:"address" validate:"max=500"`
}

// UpdateProfile replaces the caller's mutable profile fields.
func (s *Server) UpdateProfile(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(actor, commands.ProfileFields{
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
		City:      req.City,
		Address:   req.Address,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.commands.UpdateProfile.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAccount returns one account by id. Staff only, enforced by the query.
func (s *Server) GetAccount(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	accountID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	query, err := queries.NewGetAccountQuery(actor, accountID)
	if err != nil {
		return s.respondError(c, err)
	}

	account, err := s.queries.GetAccount.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAccountResponse(account))
}
