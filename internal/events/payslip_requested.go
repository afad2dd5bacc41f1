package events

import "time"

const PayslipRequestedTopic = "hr.payroll.payslip.v1"

type PayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	RequestedAt time.Time `json:"requested_at"`
}
