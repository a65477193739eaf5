package migrations

import (
	"context"

	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func AppointmentLookupIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(util.AppointmentCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetName("date")},
		{Keys: bson.D{{Key: "patient_id", Value: 1}}, Options: options.Index().SetName("patient_id")},
		{Keys: bson.D{{Key: "doctor_id", Value: 1}}, Options: options.Index().SetName("doctor_id")},
	})
	return err
}
