package employee

type CreateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	JoinDate       string `json:"join_date" binding:"required"`
	EmployeeNumber string `json:"employee_number"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	JoinDate string `json:"join_date" binding:"required"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	JoinDate       string `json:"join_date"`
	Status         string `json:"status"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
