package migrations

import (
	"context"

	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func UniqueStaffUsername(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(util.StaffCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_username"),
	})
	return err
}
