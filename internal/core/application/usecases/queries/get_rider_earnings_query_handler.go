package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRiderEarningsQueryHandler reads a rider's earning history from the
// database.
type GetRiderEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderEarningsQueryHandler creates a handler for rider earning
// queries.
func NewGetRiderEarningsQueryHandler(db *gorm.DB) GetRiderEarningsQueryHandler {
	return GetRiderEarningsQueryHandler{db: db}
}

// Handle executes the query. Earnings come back newest first; the pending
// and paid totals are summed over the full history.
func (h GetRiderEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderEarningsQuery,
) (GetRiderEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRiderEarningsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			total_earning_cents,
			status,
			created_at
		FROM rider_earnings
		WHERE rider_id = ?
		ORDER BY created_at DESC
	`, query.RiderID().Bytes()).Rows()
	if err != nil {
		return GetRiderEarningsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetRiderEarningsQueryResponse{Earnings: make([]EarningResponse, 0)}

	for rows.Next() {
		var orderID uuid.UUID
		var totalCents int64
		var status int
		var createdAt time.Time

		if err = rows.Scan(&orderID, &totalCents, &status, &createdAt); err != nil {
			return GetRiderEarningsQueryResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return GetRiderEarningsQueryResponse{}, idErr
		}

		earningStatus := delivery.EarningStatus(status)
		response.Earnings = append(response.Earnings, EarningResponse{
			OrderID:    id,
			TotalCents: totalCents,
			Status:     earningStatus.String(),
			CreatedAt:  createdAt,
		})

		switch earningStatus {
		case delivery.EarningPending:
			response.PendingTotalCents += totalCents
		case delivery.EarningPaid:
			response.PaidTotalCents += totalCents
		}
	}

	if err = rows.Err(); err != nil {
		return GetRiderEarningsQueryResponse{}, err
	}

	return response, nil
}
