package request

// CreateCashierRequest represents a cashier creation request
type CreateCashierRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Mobile   *string `json:"mobile" binding:"omitempty,max=50"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	Mobile    *string `json:"mobile" binding:"omitempty,max=50"`
	Birthdate *string `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}
