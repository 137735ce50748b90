package usecase

import (
	"strings"
	"time"

	"github.com/rsharda/kam-leads/internal/entity"
)

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.RestaurantName) == "" {
		errs = append(errs, ValidationError{"restaurant_name", "is required"})
	}
	if strings.TrimSpace(input.ContactName) == "" {
		errs = append(errs, ValidationError{"contact_name", "is required"})
	}
	if strings.TrimSpace(input.ContactInfo) == "" {
		errs = append(errs, ValidationError{"contact_info", "is required"})
	}
	if strings.TrimSpace(input.CallFrequency) == "" {
		errs = append(errs, ValidationError{"call_frequency", "is required"})
	}

	if strings.TrimSpace(input.LastCallDate) == "" {
		errs = append(errs, ValidationError{"last_call_date", "is required"})
	} else if _, ok := parseDate(input.LastCallDate); !ok {
		errs = append(errs, ValidationError{"last_call_date", "must be a valid date (YYYY-MM-DD or RFC3339)"})
	}

	if strings.TrimSpace(input.NextCallDate) == "" {
		errs = append(errs, ValidationError{"next_call_date", "is required"})
	} else if _, ok := parseDate(input.NextCallDate); !ok {
		errs = append(errs, ValidationError{"next_call_date", "must be a valid date (YYYY-MM-DD or RFC3339)"})
	}

	if input.Status != "" && !entity.IsValidLeadStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "must be one of New, In Progress, Follow-up, Closed"})
	}

	return errs
}

func ValidateLogCallInput(input LogCallInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.CallDate) == "" {
		errs = append(errs, ValidationError{"call_date", "is required"})
	} else if _, ok := parseDate(input.CallDate); !ok {
		errs = append(errs, ValidationError{"call_date", "must be a valid date (YYYY-MM-DD or RFC3339)"})
	}
	if input.Duration <= 0 {
		errs = append(errs, ValidationError{"duration", "must be a positive number of seconds"})
	}
	if strings.TrimSpace(input.CallBy) == "" {
		errs = append(errs, ValidationError{"call_by", "is required"})
	}
	if strings.TrimSpace(input.Purpose) == "" {
		errs = append(errs, ValidationError{"purpose", "is required"})
	}

	return errs
}

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
