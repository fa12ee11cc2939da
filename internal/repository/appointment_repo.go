package repository

import (
	"context"

	"dermclinic/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listLimit caps how many appointment requests the dashboard loads at once.
const listLimit = 500

// AppointmentRepo handles MongoDB operations for appointment requests
type AppointmentRepo interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context) ([]*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
}

type appointmentRepo struct {
	collection *mongo.Collection
}

// NewAppointmentRepo creates a new appointment repository
func NewAppointmentRepo(db *mongo.Database) AppointmentRepo {
	return &appointmentRepo{
		collection: db.Collection("appointments"),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	_, err := r.collection.InsertOne(ctx, appointment)
	return err
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var appointment model.Appointment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]*model.Appointment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(listLimit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []*model.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}
