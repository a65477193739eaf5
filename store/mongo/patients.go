package mongostore

import (
	"context"

	"HospitalHub/models"
	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type patients struct {
	coll *mongo.Collection
}

func (r *patients) Insert(ctx context.Context, p *models.Patient) error {
	p.ID = primitive.NewObjectID()
	return insertOne(ctx, r.coll, p)
}

func (r *patients) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	return findOne[models.Patient](ctx, r.coll, bson.M{"_id": id}, util.PATIENT_NOT_FOUND)
}

func (r *patients) List(ctx context.Context, n int) ([]models.Patient, error) {
	return findAll[models.Patient](ctx, r.coll, bson.M{}, limit(n))
}

func (r *patients) Replace(ctx context.Context, id primitive.ObjectID, in models.PatientInput) (*models.Patient, error) {
	return updateOne[models.Patient](ctx, r.coll, bson.M{"_id": id}, bson.M{"$set": in}, util.PATIENT_NOT_FOUND)
}

func (r *patients) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, util.PATIENT_NOT_FOUND)
}

func (r *patients) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.coll)
}

func (r *patients) Recent(ctx context.Context, n int) ([]models.Patient, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "admission_date", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(n))
	return findAll[models.Patient](ctx, r.coll, bson.M{}, opts)
}

func (r *patients) Search(ctx context.Context, query string, n int) ([]models.Patient, error) {
	return findAll[models.Patient](ctx, r.coll, anyFieldContains(query, "name", "contact", "address"), limit(n))
}
