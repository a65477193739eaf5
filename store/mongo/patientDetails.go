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

type patientDetails struct {
	coll *mongo.Collection
}

// Insert relies on the unique patient_id index to reject a second document.
func (r *patientDetails) Insert(ctx context.Context, d *models.PatientDetails) error {
	d.ID = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, d)
	if mongo.IsDuplicateKeyError(err) {
		return util.Conflict("%s", util.PATIENT_DETAILS_ALREADY_EXIST)
	}
	if err != nil {
		return fmt.Errorf("insert patient details: %w", err)
	}
	return nil
}

func (r *patientDetails) FindByPatient(ctx context.Context, patientID string) (*models.PatientDetails, error) {
	return findOne[models.PatientDetails](ctx, r.coll, bson.M{"patient_id": patientID}, util.PATIENT_DETAILS_NOT_FOUND)
}

func (r *patientDetails) Replace(ctx context.Context, patientID string, in models.PatientDetailsInput) (*models.PatientDetails, error) {
	return updateOne[models.PatientDetails](ctx, r.coll, bson.M{"patient_id": patientID}, bson.M{"$set": in}, util.PATIENT_DETAILS_NOT_FOUND)
}
