// Package migrations creates the indexes the store relies on. Every step is
// idempotent: creating an index that already exists with the same options is
// a no-op on the server.
package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type Migration struct {
	Version string
	Name    string
	Up      func(ctx context.Context, db *mongo.Database) error
}

func All() []Migration {
	return []Migration{
		{Version: "001", Name: "unique patient_details.patient_id", Up: UniquePatientDetailsPatientID},
		{Version: "002", Name: "unique patient_history.patient_id", Up: UniquePatientHistoryPatientID},
		{Version: "003", Name: "unique staff.username", Up: UniqueStaffUsername},
		{Version: "004", Name: "appointments date and owner indexes", Up: AppointmentLookupIndexes},
		{Version: "005", Name: "patients admission_date index", Up: PatientAdmissionIndex},
	}
}

/*
* Apply every migration in version order
* Stop at the first failure so later steps never run on a partial schema
 */
func Run(ctx context.Context, db *mongo.Database) (int, error) {
	applied := 0
	for _, m := range All() {
		if err := m.Up(ctx, db); err != nil {
			log.Error().Err(err).Str("version", m.Version).Msg("migration failed")
			return applied, fmt.Errorf("migration %s (%s): %w", m.Version, m.Name, err)
		}
		log.Info().Str("version", m.Version).Str("name", m.Name).Msg("migration applied")
		applied++
	}
	return applied, nil
}
