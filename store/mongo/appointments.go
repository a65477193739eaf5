package mongostore

import (
	"context"
	"fmt"
	"time"

	"HospitalHub/models"
	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type appointments struct {
	coll *mongo.Collection
}

func (r *appointments) Insert(ctx context.Context, a *models.Appointment) error {
	a.ID = primitive.NewObjectID()
	return insertOne(ctx, r.coll, a)
}

func (r *appointments) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	return findOne[models.Appointment](ctx, r.coll, bson.M{"_id": id}, util.APPOINTMENT_NOT_FOUND)
}

func (r *appointments) List(ctx context.Context, n int) ([]models.Appointment, error) {
	return findAll[models.Appointment](ctx, r.coll, bson.M{}, limit(n))
}

func (r *appointments) Replace(ctx context.Context, id primitive.ObjectID, a *models.Appointment) (*models.Appointment, error) {
	set := bson.M{
		"patient_id": a.PatientID,
		"doctor_id":  a.DoctorID,
		"date":       a.Date,
		"status":     a.Status,
		"notes":      a.Notes,
	}
	return updateOne[models.Appointment](ctx, r.coll, bson.M{"_id": id}, bson.M{"$set": set}, util.APPOINTMENT_NOT_FOUND)
}

func (r *appointments) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, util.APPOINTMENT_NOT_FOUND)
}

func (r *appointments) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.coll)
}

func (r *appointments) ListByPatient(ctx context.Context, patientID string, n int) ([]models.Appointment, error) {
	return findAll[models.Appointment](ctx, r.coll, bson.M{"patient_id": patientID}, limit(n))
}

func (r *appointments) ListByDoctor(ctx context.Context, doctorID string, n int) ([]models.Appointment, error) {
	return findAll[models.Appointment](ctx, r.coll, bson.M{"doctor_id": doctorID}, limit(n))
}

func (r *appointments) ListBetween(ctx context.Context, from, to time.Time, n int) ([]models.Appointment, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lt": to}}
	return findAll[models.Appointment](ctx, r.coll, filter, limit(n))
}

/*
* Group the appointments by status
* Sum one per document
* Fold the groups into a status -> count map
 */
func (r *appointments) CountByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group appointments by status: %w", err)
	}
	var groups []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode status groups: %w", err)
	}
	counts := make(map[string]int64, len(groups))
	for _, g := range groups {
		counts[g.Status] = g.Count
	}
	return counts, nil
}
