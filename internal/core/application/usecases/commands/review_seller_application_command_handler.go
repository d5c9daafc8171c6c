package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
)

// ReviewSellerApplicationCommandHandler settles seller applications. Approval
// promotes the applicant to the seller role in the same transaction; both
// verdicts notify the applicant.
type ReviewSellerApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
	publisher  ports.NotificationPublisher
}

// NewReviewSellerApplicationCommandHandler creates a handler for application
// review.
func NewReviewSellerApplicationCommandHandler(
	uowFactory ApplicationUoWFactory,
	publisher ports.NotificationPublisher,
) ReviewSellerApplicationCommandHandler {
	return ReviewSellerApplicationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the verdict. The application row is locked, so two admins
// settling concurrently serialize and the second fails with
// ErrApplicationAlreadySettled.
func (h ReviewSellerApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd ReviewSellerApplicationCommand,
) error {
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

	applicationRepo := uow.SellerApplicationRepository()

	application, err := applicationRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.Approve() {
		if err = application.Approve(cmd.Actor(), now); err != nil {
			return err
		}
		if err = uow.UserRepository().UpdateRole(ctx, application.ApplicantID(), user.RoleSeller); err != nil {
			return err
		}
	} else if err = application.Reject(cmd.Actor(), now); err != nil {
		return err
	}

	if err = applicationRepo.Update(ctx, application); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Notification{
		Event:    ports.EventSellerApplicationReviewed,
		UserID:   application.ApplicantID(),
		EntityID: application.ID(),
		NewState: application.Status().String(),
	})

	return nil
}
