package migrations

import (
	"context"

	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func UniquePatientDetailsPatientID(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(util.PatientDetailsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "patient_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_patient_id"),
	})
	return err
}
