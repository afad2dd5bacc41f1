package schedule

type DayRequest struct {
	Weekday    int    `json:"weekday"`
	Start      string `json:"start"`
	End        string `json:"end"`
	IsLeaveDay bool   `json:"is_leave_day"`
}

type UpsertWeekRequest struct {
	Days []DayRequest `json:"days" binding:"required,min=1"`
}

type DayResponse struct {
	Weekday    int    `json:"weekday"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	IsLeaveDay bool   `json:"is_leave_day"`
}

type WeekResponse struct {
	EmployeeID string        `json:"employee_id,omitempty"`
	Days       []DayResponse `json:"days"`
}
