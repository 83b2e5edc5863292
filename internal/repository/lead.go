package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leadflow/crm/internal/apperrors"
	"github.com/leadflow/crm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const leadsCollection = "leads"

// LeadRepository is the lead store. There is deliberately no delete method,
// leads are never removed through the API.
type LeadRepository interface {
	FindByID(context.Context, string) (*model.Lead, error)
	FindAll(context.Context) ([]*model.Lead, error)
	Create(context.Context, *model.Lead) (*model.Lead, error)
	UpdateStatus(context.Context, string, model.Status) (*model.Lead, error)
	PushActivity(context.Context, string, model.Activity) (*model.Lead, error)
}

type mongoLeadRepository struct {
	client   *mongo.Client
	database string
}

func NewMongoLeadRepository(client *mongo.Client, database string) LeadRepository {
	return &mongoLeadRepository{client: client, database: database}
}

func (r *mongoLeadRepository) leads() *mongo.Collection {
	return r.client.Database(r.database).Collection(leadsCollection)
}

func (r *mongoLeadRepository) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	var l model.Lead
	if err := r.leads().FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *mongoLeadRepository) FindAll(ctx context.Context) ([]*model.Lead, error) {
	leads := make([]*model.Lead, 0)

	cursor, err := r.leads().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *mongoLeadRepository) Create(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	if !l.Status.Valid() {
		return nil, apperrors.NewInvalidInputErr("status", "status must be one of New, Contacted or Qualified")
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.Activities == nil {
		l.Activities = make([]model.Activity, 0)
	}

	if _, err := r.leads().InsertOne(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *mongoLeadRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Lead, error) {
	if !status.Valid() {
		return nil, apperrors.NewInvalidInputErr("status", "status must be one of New, Contacted or Qualified")
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l model.Lead
	if err := r.leads().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *mongoLeadRepository) PushActivity(ctx context.Context, id string, a model.Activity) (*model.Lead, error) {
	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.Timestamp = now

	// single atomic $push, no read-modify-write, so concurrent appends never lose entries
	update := bson.M{
		"$push": bson.M{"activities": a},
		"$set":  bson.M{"updatedAt": now},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l model.Lead
	if err := r.leads().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
