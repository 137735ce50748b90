package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateLeadInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateLeadInput)
		wantField string
	}{
		{"missing restaurant name", func(i *CreateLeadInput) { i.RestaurantName = " " }, "restaurant_name"},
		{"missing contact name", func(i *CreateLeadInput) { i.ContactName = "" }, "contact_name"},
		{"missing contact info", func(i *CreateLeadInput) { i.ContactInfo = "" }, "contact_info"},
		{"missing call frequency", func(i *CreateLeadInput) { i.CallFrequency = "" }, "call_frequency"},
		{"missing last call date", func(i *CreateLeadInput) { i.LastCallDate = "" }, "last_call_date"},
		{"bad last call date", func(i *CreateLeadInput) { i.LastCallDate = "01/01/2025" }, "last_call_date"},
		{"missing next call date", func(i *CreateLeadInput) { i.NextCallDate = "" }, "next_call_date"},
		{"bad next call date", func(i *CreateLeadInput) { i.NextCallDate = "tomorrow" }, "next_call_date"},
		{"unknown status", func(i *CreateLeadInput) { i.Status = "Paused" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)

			errs := ValidateCreateLeadInput(input)

			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestValidateCreateLeadInputAcceptsRFC3339Dates(t *testing.T) {
	input := validCreateInput()
	input.LastCallDate = "2025-01-01T10:30:00Z"
	input.NextCallDate = "2025-01-08T10:30:00Z"

	assert.Empty(t, ValidateCreateLeadInput(input))
}

func TestValidateCreateLeadInputCollectsAllFailures(t *testing.T) {
	errs := ValidateCreateLeadInput(CreateLeadInput{})
	assert.Len(t, errs, 6)
}

func TestValidateLogCallInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*LogCallInput)
		wantField string
	}{
		{"missing call date", func(i *LogCallInput) { i.CallDate = "" }, "call_date"},
		{"bad call date", func(i *LogCallInput) { i.CallDate = "soon" }, "call_date"},
		{"zero duration", func(i *LogCallInput) { i.Duration = 0 }, "duration"},
		{"negative duration", func(i *LogCallInput) { i.Duration = -5 }, "duration"},
		{"missing caller", func(i *LogCallInput) { i.CallBy = "" }, "call_by"},
		{"missing purpose", func(i *LogCallInput) { i.Purpose = " " }, "purpose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCallInput()
			tt.mutate(&input)

			errs := ValidateLogCallInput(input)

			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}
