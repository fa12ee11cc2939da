package repository

import (
	"context"

	"dermclinic/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadRepo handles MongoDB operations for captured leads
type LeadRepo interface {
	Create(ctx context.Context, lead *model.Lead) error
	List(ctx context.Context) ([]*model.Lead, error)
}

type leadRepo struct {
	collection *mongo.Collection
}

// NewLeadRepo creates a new lead repository
func NewLeadRepo(db *mongo.Database) LeadRepo {
	return &leadRepo{
		collection: db.Collection("leads"),
	}
}

func (r *leadRepo) Create(ctx context.Context, lead *model.Lead) error {
	_, err := r.collection.InsertOne(ctx, lead)
	return err
}

func (r *leadRepo) List(ctx context.Context) ([]*model.Lead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(listLimit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []*model.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}
