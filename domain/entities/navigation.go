package entities

// NavigationOutcome is the result of one navigation attempt sequence.
type NavigationOutcome struct {
	Success    bool `json:"success"`
	HTTPStatus *int `json:"status_code"`
	Attempts   int  `json:"attempts"`
}

// StatusOrZero returns the HTTP status or 0 when no response was received.
func (o NavigationOutcome) StatusOrZero() int {
	if o.HTTPStatus == nil {
		return 0
	}
	return *o.HTTPStatus
}
