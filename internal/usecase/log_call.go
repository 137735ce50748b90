package usecase

import (
	"context"

	"github.com/rsharda/kam-leads/internal/entity"
)

type LogCallUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewLogCallUseCase(leads entity.LeadRepositoryInterface) *LogCallUseCase {
	return &LogCallUseCase{Leads: leads}
}

// Execute appends one record to the lead's call history and returns
// the updated history, oldest entry first.
func (uc *LogCallUseCase) Execute(ctx context.Context, leadID string, input LogCallInput) ([]entity.CallRecord, error) {
	if errs := ValidateLogCallInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	callDate, _ := parseDate(input.CallDate)

	record := entity.CallRecord{
		CallDate: callDate,
		Duration: input.Duration,
		CallBy:   input.CallBy,
		Purpose:  input.Purpose,
		Notes:    input.Notes,
	}

	updated, err := uc.Leads.AppendCall(ctx, lead.ID, lead.Version, record)
	if err != nil {
		return nil, err
	}

	return updated.CallHistory, nil
}

type GetCallHistoryUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewGetCallHistoryUseCase(leads entity.LeadRepositoryInterface) *GetCallHistoryUseCase {
	return &GetCallHistoryUseCase{Leads: leads}
}

// Execute returns the call history verbatim. A lead with no logged
// calls yields an empty slice, not an error.
func (uc *GetCallHistoryUseCase) Execute(ctx context.Context, leadID string) ([]entity.CallRecord, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if lead.CallHistory == nil {
		return []entity.CallRecord{}, nil
	}
	return lead.CallHistory, nil
}
