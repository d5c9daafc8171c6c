package commands

import (
	"context"
	"time"
)

// ProcessPayoutsCommandHandler settles pending rider earnings. The actual
// money movement is external; the core marks earnings paid so they drop out
// of the next run.
type ProcessPayoutsCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewProcessPayoutsCommandHandler creates a handler for payout runs.
func NewProcessPayoutsCommandHandler(uowFactory PayoutUoWFactory) ProcessPayoutsCommandHandler {
	return ProcessPayoutsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks every pending earning paid and returns how many were settled.
func (h ProcessPayoutsCommandHandler) Handle(ctx context.Context, cmd ProcessPayoutsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	pending, err := deliveryRepo.GetPendingEarnings(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, earning := range pending {
		if err = earning.MarkPaid(now); err != nil {
			return 0, err
		}
		if err = deliveryRepo.UpdateEarning(ctx, earning); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(pending), nil
}
