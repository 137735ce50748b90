package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/usecase"
)

type LeadRepository struct {
	Collection *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{Collection: db.Collection(CollectionLeads)}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	_, err := r.Collection.InsertOne(ctx, lead)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &usecase.NotFoundError{Resource: "lead", ID: id}
	}
	if err != nil {
		return nil, &usecase.StoreError{Op: "find lead", Err: err}
	}
	return &lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, &usecase.StoreError{Op: "find leads", Err: err}
	}

	leads := []entity.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, &usecase.StoreError{Op: "decode leads", Err: err}
	}
	return leads, nil
}

func (r *LeadRepository) FindDueForCall(ctx context.Context, now time.Time) ([]entity.Lead, error) {
	filter := bson.M{
		"next_call_date": bson.M{"$lte": now},
		"status":         bson.M{"$ne": entity.LeadStatusClosed},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, &usecase.StoreError{Op: "find due leads", Err: err}
	}

	leads := []entity.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, &usecase.StoreError{Op: "decode due leads", Err: err}
	}
	return leads, nil
}

// ApplyStatusChange writes the status, the audit entry and lastUpdated
// in a single document update, so the history can never be observed
// without its matching field write. The version filter rejects writes
// against a stale read.
func (r *LeadRepository) ApplyStatusChange(ctx context.Context, id string, version int64, change entity.StatusChange, fileRef string) (*entity.Lead, error) {
	set := bson.M{
		"status":       change.Status,
		"last_updated": change.UpdatedAt,
		"updated_at":   change.UpdatedAt,
	}
	if fileRef != "" {
		set["file"] = fileRef
	}

	update := bson.M{
		"$set":  set,
		"$push": bson.M{"status_history": change},
		"$inc":  bson.M{"version": 1},
	}

	return r.guardedUpdate(ctx, id, version, update, "update lead status")
}

func (r *LeadRepository) ApplyAssignment(ctx context.Context, id string, version int64, assignedTo string) (*entity.Lead, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"assigned_to":  assignedTo,
			"last_updated": now,
			"updated_at":   now,
		},
		"$inc": bson.M{"version": 1},
	}

	return r.guardedUpdate(ctx, id, version, update, "assign lead")
}

func (r *LeadRepository) AppendCall(ctx context.Context, id string, version int64, record entity.CallRecord) (*entity.Lead, error) {
	now := time.Now()
	update := bson.M{
		"$push": bson.M{"call_history": record},
		"$set": bson.M{
			"last_updated": now,
			"updated_at":   now,
		},
		"$inc": bson.M{"version": 1},
	}

	return r.guardedUpdate(ctx, id, version, update, "append call")
}

func (r *LeadRepository) guardedUpdate(ctx context.Context, id string, version int64, update bson.M, op string) (*entity.Lead, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": id, "version": version}

	var updated entity.Lead
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the lead vanished or someone else won the write.
		exists, checkErr := r.exists(ctx, id)
		if checkErr != nil {
			return nil, &usecase.StoreError{Op: op, Err: checkErr}
		}
		if !exists {
			return nil, &usecase.NotFoundError{Resource: "lead", ID: id}
		}
		return nil, usecase.ErrVersionConflict
	}
	if err != nil {
		return nil, &usecase.StoreError{Op: op, Err: err}
	}

	return &updated, nil
}

func (r *LeadRepository) exists(ctx context.Context, id string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	lead.UpdatedAt = time.Now()
	lead.LastUpdated = lead.UpdatedAt

	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": lead.ID}, lead)
	if err != nil {
		return &usecase.StoreError{Op: "update lead", Err: err}
	}
	if res.MatchedCount == 0 {
		return &usecase.NotFoundError{Resource: "lead", ID: lead.ID}
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &usecase.StoreError{Op: "delete lead", Err: err}
	}
	if res.DeletedCount == 0 {
		return &usecase.NotFoundError{Resource: "lead", ID: id}
	}
	return nil
}
