package migrations

import (
	"context"

	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func PatientAdmissionIndex(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(util.PatientCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "admission_date", Value: -1}, {Key: "_id", Value: -1}},
		Options: options.Index().SetName("admission_date_desc"),
	})
	return err
}
