package commands

import (
	"errors"
	"fmt"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrReviewDeclarationCommandIsNotConstructed = errors.New(
	"ReviewDeclarationCommand must be created via NewReviewDeclarationCommand constructor",
)

// ReviewDecision is the outcome a broker records on a declaration.
type ReviewDecision string

const (
	DecisionStartReview ReviewDecision = "under_review"
	DecisionApprove     ReviewDecision = "approved"
	DecisionReject      ReviewDecision = "rejected"
)

// Validate checks that the decision is one of the known outcomes.
func (d ReviewDecision) Validate() error {
	switch d {
	case DecisionStartReview, DecisionApprove, DecisionReject:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("%q is not a valid review decision", string(d)))
	}
}

// ReviewDeclarationCommand represents a staff review step: picking a
// declaration up, approving it, or rejecting it with a reason.
type ReviewDeclarationCommand struct { //nolint:recvcheck //using for validation
	declarationID kernel.UUID
	actor         kernel.Actor
	decision      ReviewDecision
	reason        string

	guard guard.ConstructorGuard
}

// NewReviewDeclarationCommand creates a command to record a review step.
// A rejection requires a reason; other decisions ignore it.
func NewReviewDeclarationCommand(
	declarationID kernel.UUID,
	actor kernel.Actor,
	decision ReviewDecision,
	reason string,
) (ReviewDeclarationCommand, error) {
	cmd := ReviewDeclarationCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeclarationID(declarationID),
		cmd.setActor(actor),
		cmd.setDecision(decision, reason),
	); err != nil {
		return ReviewDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrReviewDeclarationCommandIsNotConstructed)
}

func (c ReviewDeclarationCommand) DeclarationID() kernel.UUID { return c.declarationID }
func (c ReviewDeclarationCommand) Actor() kernel.Actor        { return c.actor }
func (c ReviewDeclarationCommand) Decision() ReviewDecision   { return c.decision }
func (c ReviewDeclarationCommand) Reason() string             { return c.reason }

func (c *ReviewDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}
	c.declarationID = declarationID
	return nil
}

func (c *ReviewDeclarationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ReviewDeclarationCommand) setDecision(decision ReviewDecision, reason string) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	if decision == DecisionReject && reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.decision = decision
	return nil
}
