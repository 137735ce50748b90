package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rsharda/kam-leads/internal/entity"
)

// fakeLeadRepository is an in-memory store with the same guarded-write
// semantics as the Mongo repository.
type fakeLeadRepository struct {
	leads map[string]*entity.Lead
}

func newFakeLeadRepository() *fakeLeadRepository {
	return &fakeLeadRepository{leads: make(map[string]*entity.Lead)}
}

func (f *fakeLeadRepository) Insert(_ context.Context, lead *entity.Lead) error {
	copied := *lead
	f.leads[lead.ID] = &copied
	return nil
}

func (f *fakeLeadRepository) FindByID(_ context.Context, id string) (*entity.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, &NotFoundError{Resource: "lead", ID: id}
	}
	copied := *lead
	return &copied, nil
}

func (f *fakeLeadRepository) FindAll(_ context.Context) ([]entity.Lead, error) {
	out := []entity.Lead{}
	for _, lead := range f.leads {
		out = append(out, *lead)
	}
	return out, nil
}

func (f *fakeLeadRepository) FindDueForCall(_ context.Context, now time.Time) ([]entity.Lead, error) {
	out := []entity.Lead{}
	for _, lead := range f.leads {
		if !lead.NextCallDate.After(now) && lead.Status != entity.LeadStatusClosed {
			out = append(out, *lead)
		}
	}
	return out, nil
}

func (f *fakeLeadRepository) guarded(id string, version int64) (*entity.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, &NotFoundError{Resource: "lead", ID: id}
	}
	if lead.Version != version {
		return nil, ErrVersionConflict
	}
	return lead, nil
}

func (f *fakeLeadRepository) ApplyStatusChange(_ context.Context, id string, version int64, change entity.StatusChange, fileRef string) (*entity.Lead, error) {
	lead, err := f.guarded(id, version)
	if err != nil {
		return nil, err
	}
	lead.Status = change.Status
	lead.StatusHistory = append(lead.StatusHistory, change)
	lead.LastUpdated = change.UpdatedAt
	if fileRef != "" {
		lead.File = fileRef
	}
	lead.Version++
	copied := *lead
	return &copied, nil
}

func (f *fakeLeadRepository) ApplyAssignment(_ context.Context, id string, version int64, assignedTo string) (*entity.Lead, error) {
	lead, err := f.guarded(id, version)
	if err != nil {
		return nil, err
	}
	lead.AssignedTo = assignedTo
	lead.LastUpdated = time.Now()
	lead.Version++
	copied := *lead
	return &copied, nil
}

func (f *fakeLeadRepository) AppendCall(_ context.Context, id string, version int64, record entity.CallRecord) (*entity.Lead, error) {
	lead, err := f.guarded(id, version)
	if err != nil {
		return nil, err
	}
	lead.CallHistory = append(lead.CallHistory, record)
	lead.LastUpdated = time.Now()
	lead.Version++
	copied := *lead
	return &copied, nil
}

func (f *fakeLeadRepository) Update(_ context.Context, lead *entity.Lead) error {
	if _, ok := f.leads[lead.ID]; !ok {
		return &NotFoundError{Resource: "lead", ID: lead.ID}
	}
	copied := *lead
	f.leads[lead.ID] = &copied
	return nil
}

func (f *fakeLeadRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.leads[id]; !ok {
		return &NotFoundError{Resource: "lead", ID: id}
	}
	delete(f.leads, id)
	return nil
}

// TestLeadLifecycleScenario walks the full create → transition →
// assign → assign-again flow.
func TestLeadLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeadRepository()

	createUC := NewCreateLeadUseCase(repo, nil)
	statusUC := NewUpdateLeadStatusUseCase(repo, nil)
	assignUC := NewAssignLeadUseCase(repo, nil)

	lead, err := createUC.Execute(ctx, CreateLeadInput{
		RestaurantName: "Acme Diner",
		ContactName:    "J. Lee",
		ContactInfo:    "j@acme.com",
		CallFrequency:  "Weekly",
		LastCallDate:   "2025-01-01",
		NextCallDate:   "2025-01-08",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Len(t, lead.StatusHistory, 1)

	updated, err := statusUC.Execute(ctx, lead.ID, UpdateLeadStatusInput{
		Status:    entity.LeadStatusInProgress,
		UpdatedBy: "kam1",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusInProgress, updated.Status)
	assert.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, "kam1", updated.StatusHistory[1].UpdatedBy)
	assert.Equal(t, updated.Status, updated.CurrentStatusEntry().Status)

	assigned, err := assignUC.Execute(ctx, lead.ID, "kam1")
	assert.NoError(t, err)
	assert.Equal(t, "kam1", assigned.AssignedTo)

	_, err = assignUC.Execute(ctx, lead.ID, "kam1")
	var already *AlreadyAssignedError
	assert.ErrorAs(t, err, &already)

	final, err := repo.FindByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, "kam1", final.AssignedTo)
	assert.Len(t, final.StatusHistory, 2)
}

// TestStatusHistoryGrowsByOnePerUpdate checks the audit trail length
// after a run of transitions.
func TestStatusHistoryGrowsByOnePerUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeadRepository()

	createUC := NewCreateLeadUseCase(repo, nil)
	statusUC := NewUpdateLeadStatusUseCase(repo, nil)

	lead, err := createUC.Execute(ctx, CreateLeadInput{
		RestaurantName: "Bombay Bistro",
		ContactName:    "A. Rao",
		ContactInfo:    "a@bistro.in",
		CallFrequency:  "Monthly",
		LastCallDate:   "2025-02-01",
		NextCallDate:   "2025-03-01",
	})
	assert.NoError(t, err)

	transitions := []string{
		entity.LeadStatusInProgress,
		entity.LeadStatusFollowUp,
		entity.LeadStatusFollowUp, // no-op transition still appends
		entity.LeadStatusClosed,
	}

	for i, status := range transitions {
		updated, err := statusUC.Execute(ctx, lead.ID, UpdateLeadStatusInput{Status: status})
		assert.NoError(t, err)
		assert.Len(t, updated.StatusHistory, i+2)
		assert.Equal(t, status, updated.CurrentStatusEntry().Status)
	}
}
