package payroll

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	BaseSalary int64  `json:"base_salary" binding:"required"`
	Allowance  int64  `json:"allowance"`
}

type PayrollResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	BaseSalary  int64   `json:"base_salary"`
	Allowance   int64   `json:"allowance"`
	Deduction   int64   `json:"deduction"`
	NetSalary   int64   `json:"net_salary"`
	WorkingDays int     `json:"working_days"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
	LateDays    int     `json:"late_days"`
	HalfDays    int     `json:"half_days"`
	Status      string  `json:"status"`
	PayslipPath *string `json:"payslip_path,omitempty"`
	PaidAt      *string `json:"paid_at,omitempty"`
}
