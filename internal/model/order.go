package model

// Order is a unit of work posted by a customer and taken by an executor.
// CustomerID and ExecutorID reference users; the references are nominal,
// the store does not enforce their existence.
type Order struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Address     string `json:"address"`
	Price       int64  `json:"price"`
	CustomerID  int64  `json:"customer_id"`
	ExecutorID  int64  `json:"executor_id"`
}

// OrderRequest is the request body for creating or replacing an order.
type OrderRequest struct {
	ID          *int64  `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	StartDate   *string `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date" binding:"required"`
	Address     *string `json:"address" binding:"required"`
	Price       *int64  `json:"price" binding:"required"`
	CustomerID  *int64  `json:"customer_id" binding:"required"`
	ExecutorID  *int64  `json:"executor_id" binding:"required"`
}

func (r *OrderRequest) ToOrder() *Order {
	return &Order{
		ID:          *r.ID,
		Name:        *r.Name,
		Description: *r.Description,
		StartDate:   *r.StartDate,
		EndDate:     *r.EndDate,
		Address:     *r.Address,
		Price:       *r.Price,
		CustomerID:  *r.CustomerID,
		ExecutorID:  *r.ExecutorID,
	}
}
