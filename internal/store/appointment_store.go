package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Harshadsshinde/hospital-management-system/internal/models"
)

type MongoAppointmentStore struct {
	col *mongo.Collection
}

func NewAppointmentStore(db *mongo.Database) *MongoAppointmentStore {
	return &MongoAppointmentStore{col: db.Collection("appointments")}
}

func (s *MongoAppointmentStore) Create(ctx context.Context, apt *models.Appointment) error {
	if apt.ID.IsZero() {
		apt.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, apt)
	return err
}

func (s *MongoAppointmentStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var apt models.Appointment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&apt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

func (s *MongoAppointmentStore) All(ctx context.Context) ([]models.Appointment, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	return appointments, nil
}

func (s *MongoAppointmentStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoAppointmentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
