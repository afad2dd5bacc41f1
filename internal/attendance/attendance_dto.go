package attendance

type SubmitRequest struct {
	Location string `json:"location" binding:"required"`
	PhotoRef string `json:"photo_ref"`
}

type SubmitResponse struct {
	Accepted   bool          `json:"accepted"`
	InOffice   bool          `json:"in_office"`
	OfficeName string        `json:"office_name"`
	Event      EventResponse `json:"event"`
}

type EventResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Type          string  `json:"type"`
	OccurredAt    string  `json:"occurred_at"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	MatchedOffice string  `json:"matched_office"`
	InOffice      bool    `json:"in_office"`
	PhotoRef      string  `json:"photo_ref,omitempty"`
}

type HistoryFilterRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type StatusResponse struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	NextAction string `json:"next_action"`
}
