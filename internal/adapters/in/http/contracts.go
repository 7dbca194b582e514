package http

import (
	"time"

	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/order"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerPayload carries customer details on the wire.
type CustomerPayload struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// AddressPayload carries delivery address details on the wire.
type AddressPayload struct {
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

// NewItemPayload is one line item of an order being created. Status is the
// integer ordinal; when omitted the item starts as ordered.
type NewItemPayload struct {
	PLU      string `json:"plu"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   *int   `json:"status,omitempty"`
}

// StatusSeedPayload is one caller-supplied history entry recorded before
// the order reached this system.
type StatusSeedPayload struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateOrderRequest is the request body for order creation. Statuses come
// in as integer ordinals, the way channels send them. ID is optional; a
// fresh identifier is generated when omitted.
type CreateOrderRequest struct {
	ID              *string             `json:"id,omitempty"`
	Account         string              `json:"account"`
	BrandID         string              `json:"brand_id"`
	ChannelOrderID  string              `json:"channel_order_id"`
	Customer        CustomerPayload     `json:"customer"`
	DeliveryAddress AddressPayload      `json:"delivery_address"`
	PickupTime      time.Time           `json:"pickup_time"`
	Status          int                 `json:"status"`
	StatusHistory   []StatusSeedPayload `json:"status_history,omitempty"`
	Items           []NewItemPayload    `json:"items"`
}

// UpdateStatusRequest is the request body for order and item status
// transitions. Status is the integer ordinal.
type UpdateStatusRequest struct {
	Status int `json:"status"`
}

// StatusHistoryEntryResponse is one audit record in a response. Statuses
// go out as names, which read better than ordinals in dashboards and logs.
type StatusHistoryEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemResponse represents one line item in a response.
type ItemResponse struct {
	PLU           string                       `json:"plu"`
	Name          string                       `json:"name"`
	Quantity      int                          `json:"quantity"`
	Status        string                       `json:"status"`
	StatusHistory []StatusHistoryEntryResponse `json:"status_history"`
}

// OrderResponse represents a full order aggregate in a response.
type OrderResponse struct {
	ID              string                       `json:"id"`
	Account         string                       `json:"account"`
	BrandID         string                       `json:"brand_id"`
	ChannelOrderID  string                       `json:"channel_order_id"`
	Customer        CustomerPayload              `json:"customer"`
	DeliveryAddress AddressPayload               `json:"delivery_address"`
	PickupTime      time.Time                    `json:"pickup_time"`
	Status          string                       `json:"status"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
	Items           []ItemResponse               `json:"items"`
	StatusHistory   []StatusHistoryEntryResponse `json:"status_history"`
}

// StatusDurationResponse is one row of the status duration analytics.
type StatusDurationResponse struct {
	Status             string  `json:"status"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
}

// HourlyThroughputResponse is one hour bucket of the throughput analytics.
type HourlyThroughputResponse struct {
	Hour       time.Time `json:"hour"`
	OrderCount int64     `json:"order_count"`
}

// CustomerOrderCountResponse is one account row of the customer analytics.
type CustomerOrderCountResponse struct {
	Account      string    `json:"account"`
	OrderCount   int64     `json:"order_count"`
	FirstOrderAt time.Time `json:"first_order_at"`
	LastOrderAt  time.Time `json:"last_order_at"`
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, itemToResponse(it))
	}

	history := make([]StatusHistoryEntryResponse, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, StatusHistoryEntryResponse{
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
		})
	}

	return OrderResponse{
		ID:             o.ID().String(),
		Account:        o.Account().String(),
		BrandID:        o.BrandID().String(),
		ChannelOrderID: o.ChannelOrderID(),
		Customer: CustomerPayload{
			Name:        o.Customer().Name(),
			PhoneNumber: o.Customer().PhoneNumber(),
		},
		DeliveryAddress: AddressPayload{
			City:       o.DeliveryAddress().City(),
			Street:     o.DeliveryAddress().Street(),
			PostalCode: o.DeliveryAddress().PostalCode(),
		},
		PickupTime:    o.PickupTime(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Items:         items,
		StatusHistory: history,
	}
}

func itemToResponse(it *item.Item) ItemResponse {
	history := make([]StatusHistoryEntryResponse, 0, len(it.StatusHistory()))
	for _, entry := range it.StatusHistory() {
		history = append(history, StatusHistoryEntryResponse{
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
		})
	}

	return ItemResponse{
		PLU:           it.PLU(),
		Name:          it.Name(),
		Quantity:      it.Quantity(),
		Status:        it.Status().String(),
		StatusHistory: history,
	}
}

func durationsToResponse(durations []queries.StatusDurationResponse) []StatusDurationResponse {
	response := make([]StatusDurationResponse, 0, len(durations))
	for _, d := range durations {
		response = append(response, StatusDurationResponse{
			Status:             d.Status,
			AvgDurationSeconds: d.AvgDurationSeconds,
		})
	}
	return response
}
