package presence

type MonthQueryRequest struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type SummaryResponse struct {
	EmployeeID  string `json:"employee_id"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	TotalDays   int    `json:"total_days"`
	WorkingDays int    `json:"working_days"`
	PresentDays int    `json:"present_days"`
	AbsentDays  int    `json:"absent_days"`
	LeaveDays   int    `json:"leave_days"`
	LateDays    int    `json:"late_days"`
	HalfDays    int    `json:"half_days"`
}

type DayResponse struct {
	Date           string `json:"date"`
	Status         string `json:"status"`
	CheckIn        string `json:"check_in,omitempty"`
	CheckOut       string `json:"check_out,omitempty"`
	Office         string `json:"office,omitempty"`
	WorkedDuration string `json:"worked_duration,omitempty"`
	LateMinutes    int    `json:"late_minutes,omitempty"`
}

type CalendarResponse struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Days       []DayResponse   `json:"days"`
	Summary    SummaryResponse `json:"summary"`
}
