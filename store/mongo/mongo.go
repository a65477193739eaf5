// Package mongostore implements the store repositories on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"HospitalHub/store"
	"HospitalHub/util"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

/*
* Open the client with the given uri
* Ping the primary so a bad uri fails at startup
* Return the named database
 */
func Connect(ctx context.Context, uri string, database string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Info().Str("database", database).Msg("connected to MongoDB")
	return client.Database(database), nil
}

// NewStore wires every repository to its collection in db. Closing the
// store disconnects the client.
func NewStore(database *mongo.Database) *store.Store {
	return store.New(
		&patients{coll: database.Collection(util.PatientCollection)},
		&doctors{coll: database.Collection(util.DoctorCollection)},
		&appointments{coll: database.Collection(util.AppointmentCollection)},
		&patientDetails{coll: database.Collection(util.PatientDetailsCollection)},
		&patientHistory{coll: database.Collection(util.PatientHistoryCollection)},
		&staff{coll: database.Collection(util.StaffCollection)},
		func(ctx context.Context) error {
			return database.Client().Disconnect(ctx)
		},
	)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

// insertOne is for collections without a unique index. The shared helper
// replaces the driver error with a fixed message, so inserts that must
// report duplicate keys call the driver directly.
func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) error {
	if _, err := db.CreateOne(ctx, coll, doc); err != nil {
		return fmt.Errorf("insert %s: %w", coll.Name(), err)
	}
	return nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, notFound string) (*T, error) {
	var doc T
	err := db.FindOne(ctx, coll, filter, &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFound("%s", notFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func updateOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}, notFound string) (*T, error) {
	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFound("%s", notFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound string) error {
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return util.NotFound("%s", notFound)
	}
	return nil
}

func count(ctx context.Context, coll *mongo.Collection) (int64, error) {
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	return n, nil
}

// anyFieldContains builds a case-insensitive substring match over fields.
func anyFieldContains(query string, fields ...string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	return bson.M{"$or": or}
}

func limit(n int) *options.FindOptions {
	return options.Find().SetLimit(int64(n))
}
