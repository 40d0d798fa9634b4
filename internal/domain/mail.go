package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ShiftSubmittedMailData struct {
	EmployeeName string  `json:"employeeName"`
	Month        string  `json:"month"`
	ShiftCount   int     `json:"shiftCount"`
	TotalHours   float64 `json:"totalHours"`
}
