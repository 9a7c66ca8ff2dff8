package model

// Offer is a proposal by an executor to take an order.
type Offer struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"order_id"`
	ExecutorID int64 `json:"executor_id"`
}

// OfferRequest is the request body for creating or replacing an offer.
type OfferRequest struct {
	ID         *int64 `json:"id" binding:"required"`
	OrderID    *int64 `json:"order_id" binding:"required"`
	ExecutorID *int64 `json:"executor_id" binding:"required"`
}

func (r *OfferRequest) ToOffer() *Offer {
	return &Offer{
		ID:         *r.ID,
		OrderID:    *r.OrderID,
		ExecutorID: *r.ExecutorID,
	}
}
