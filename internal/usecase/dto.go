package usecase

type CreateLeadInput struct {
	RestaurantName string `json:"restaurant_name"`
	ContactName    string `json:"contact_name"`
	ContactInfo    string `json:"contact_info"`
	CallFrequency  string `json:"call_frequency"`
	LastCallDate   string `json:"last_call_date"`
	NextCallDate   string `json:"next_call_date"`

	Status    string `json:"status,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`

	// FileRef is set by the HTTP layer after storing the upload; it is
	// never taken from the JSON body.
	FileRef string `json:"-"`
}

type UpdateLeadStatusInput struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"-"`
	FileRef   string `json:"-"`
}

type AssignLeadInput struct {
	AssignedTo string `json:"assignedTo"`
}

type LogCallInput struct {
	CallDate string `json:"call_date"`
	Duration int    `json:"duration"`
	CallBy   string `json:"call_by"`
	Purpose  string `json:"purpose"`
	Notes    string `json:"notes,omitempty"`
}
