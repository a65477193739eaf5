package mongostore

import (
	"context"
	"fmt"

	"HospitalHub/models"
	"HospitalHub/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type patientHistory struct {
	coll *mongo.Collection
}

func (r *patientHistory) Insert(ctx context.Context, h *models.PatientHistory) error {
	h.ID = primitive.NewObjectID()
	if h.MedicalRecords == nil {
		h.MedicalRecords = []models.MedicalRecord{}
	}
	_, err := r.coll.InsertOne(ctx, h)
	if mongo.IsDuplicateKeyError(err) {
		return util.Conflict("%s", util.PATIENT_HISTORY_ALREADY_EXIST)
	}
	if err != nil {
		return fmt.Errorf("insert patient history: %w", err)
	}
	return nil
}

func (r *patientHistory) FindByPatient(ctx context.Context, patientID string) (*models.PatientHistory, error) {
	return findOne[models.PatientHistory](ctx, r.coll, bson.M{"patient_id": patientID}, util.PATIENT_HISTORY_NOT_FOUND)
}

/*
* Push the record with upsert so the existence check and the write are one operation
* The equality filter seeds patient_id when the document is created
* Two first appends racing on the unique index leave one of them with a
* duplicate key error; that one is retried and lands as a plain push
 */
func (r *patientHistory) AppendRecord(ctx context.Context, patientID string, rec models.MedicalRecord) (*models.PatientHistory, error) {
	filter := bson.M{"patient_id": patientID}
	update := bson.M{"$push": bson.M{"medical_records": rec}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		var h models.PatientHistory
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&h)
		if err == nil {
			return &h, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			break
		}
		log.Warn().Str("patient_id", patientID).Msg("concurrent history creation, retrying append")
	}
	return nil, fmt.Errorf("append medical record: %w", err)
}
