package mongostore

import (
	"context"

	"HospitalHub/models"
	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type doctors struct {
	coll *mongo.Collection
}

func (r *doctors) Insert(ctx context.Context, d *models.Doctor) error {
	d.ID = primitive.NewObjectID()
	return insertOne(ctx, r.coll, d)
}

func (r *doctors) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	return findOne[models.Doctor](ctx, r.coll, bson.M{"_id": id}, util.DOCTOR_NOT_FOUND)
}

func (r *doctors) List(ctx context.Context, n int) ([]models.Doctor, error) {
	return findAll[models.Doctor](ctx, r.coll, bson.M{}, limit(n))
}

func (r *doctors) Replace(ctx context.Context, id primitive.ObjectID, in models.DoctorInput) (*models.Doctor, error) {
	return updateOne[models.Doctor](ctx, r.coll, bson.M{"_id": id}, bson.M{"$set": in}, util.DOCTOR_NOT_FOUND)
}

func (r *doctors) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, util.DOCTOR_NOT_FOUND)
}

func (r *doctors) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.coll)
}

func (r *doctors) Search(ctx context.Context, query string, n int) ([]models.Doctor, error) {
	return findAll[models.Doctor](ctx, r.coll, anyFieldContains(query, "name", "specialization", "email"), limit(n))
}
