package queries

import (
	"context"

	"orderhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrderCountsQueryHandler reads the customer_order_count
// materialized view.
type GetCustomerOrderCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrderCountsQueryHandler creates a handler for customer
// order count queries. Requires a GORM database connection.
func NewGetCustomerOrderCountsQueryHandler(db *gorm.DB) GetCustomerOrderCountsQueryHandler {
	return GetCustomerOrderCountsQueryHandler{db: db}
}

// Handle executes the query, returning the most active accounts first.
func (h GetCustomerOrderCountsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderCountsQuery,
) ([]CustomerOrderCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]CustomerOrderCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			account,
			order_count,
			first_order_at,
			last_order_at
		FROM customer_order_count
		ORDER BY order_count DESC, account
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var count CustomerOrderCountResponse
		var account uuid.UUID

		err = rows.Scan(
			&account,
			&count.OrderCount,
			&count.FirstOrderAt,
			&count.LastOrderAt,
		)
		if err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(account[:])
		if idErr != nil {
			return nil, idErr
		}
		count.Account = accountID

		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
