package migrations

import (
	"context"

	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The append endpoint's upsert depends on this index to turn a racing
// second insert into a duplicate key error instead of a second document.
func UniquePatientHistoryPatientID(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(util.PatientHistoryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "patient_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_patient_id"),
	})
	return err
}
