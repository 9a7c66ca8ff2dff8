package model

// User represents a registered participant of the marketplace. A user can
// appear on an order both as the customer and as the executor.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     int64  `json:"phone"`
}

// UserRequest is the request body for creating or replacing a user.
// Fields are pointers so that "key absent" and "zero value" stay
// distinguishable: required only rejects missing keys, an age of 0 or an
// empty role still binds.
type UserRequest struct {
	ID        *int64  `json:"id" binding:"required"`
	FirstName *string `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name" binding:"required"`
	Age       *int    `json:"age" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	Role      *string `json:"role" binding:"required"`
	Phone     *int64  `json:"phone" binding:"required"`
}

// ToUser builds the entity from a fully bound request.
func (r *UserRequest) ToUser() *User {
	return &User{
		ID:        *r.ID,
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
		Age:       *r.Age,
		Email:     *r.Email,
		Role:      *r.Role,
		Phone:     *r.Phone,
	}
}
