package commands

import (
	"context"

	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
)

// ReviewDeclarationCommandHandler handles broker review steps. The first
// approve or reject stamps reviewedAt and freezes the reviewer identity; a
// notification is enqueued after commit.
type ReviewDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
	notifier   ports.Notifier
}

// NewReviewDeclarationCommandHandler creates a handler for review steps.
func NewReviewDeclarationCommandHandler(
	uowFactory DeclarationUoWFactory,
	notifier ports.Notifier,
) ReviewDeclarationCommandHandler {
	return ReviewDeclarationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the review command. Foreign declarations read as not
// found; the declaration's own customer gets a forbidden error from the
// aggregate's staff check.
func (h *ReviewDeclarationCommandHandler) Handle(ctx context.Context, cmd ReviewDeclarationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeclarationRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.DeclarationID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanActOn(aggregate.CustomerID()) {
		return errs.NewObjectNotFoundError("declaration", cmd.DeclarationID())
	}

	switch cmd.Decision() {
	case DecisionStartReview:
		err = aggregate.StartReview(cmd.Actor())
	case DecisionApprove:
		err = aggregate.Approve(cmd.Actor())
	case DecisionReject:
		err = aggregate.Reject(cmd.Actor(), cmd.Reason())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	owner, err := uow.AccountRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyStatusChange(ctx, ports.StatusChangeNotice{
		Recipient:    owner.Email(),
		CustomerName: owner.DisplayName(),
		EntityKind:   notification.RelatedDeclaration,
		EntityID:     aggregate.ID(),
		EntityNumber: aggregate.Number().String(),
		NewStatus:    aggregate.Status().String(),
		Note:         cmd.Reason(),
	})
	return nil
}
