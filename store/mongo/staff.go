package mongostore

import (
	"context"
	"fmt"

	"HospitalHub/models"
	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type staff struct {
	coll *mongo.Collection
}

func (r *staff) Insert(ctx context.Context, s *models.Staff) error {
	s.ID = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return util.Conflict("%s", util.USERNAME_ALREADY_EXISTS)
	}
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *staff) FindByUsername(ctx context.Context, username string) (*models.Staff, error) {
	return findOne[models.Staff](ctx, r.coll, bson.M{"username": username}, util.USER_NOT_FOUND)
}
