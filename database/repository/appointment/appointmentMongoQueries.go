// File: database/repository/appointment/appointmentMongoQueries.go
package appointmentRepo

import (
	"fmt"
	"time"

	"careplus/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByDoctorAt returns the non-cancelled appointments for a doctor at the
// exact normalized instant. With the uniqueness index in place the result has
// at most one element, but the slice shape keeps the read honest about what
// the store could contain.
func (r *MongoAppointmentRepo) FindByDoctorAt(physician, schedule string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"primary_physician": physician,
		"schedule":          schedule,
		"status":            bson.M{"$ne": string(models.StatusCancelled)},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding appointments for %s at %s: %w", physician, schedule, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// FindByDoctorBetween returns the non-cancelled appointments for a doctor
// with schedule within [from, to]. Normalized instants sort lexicographically
// in chronological order, so plain string range operators are exact.
func (r *MongoAppointmentRepo) FindByDoctorBetween(physician, from, to string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"primary_physician": physician,
		"schedule":          bson.M{"$gte": from, "$lte": to},
		"status":            bson.M{"$ne": string(models.StatusCancelled)},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding appointments for %s in range: %w", physician, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// ListRecent returns appointments ordered by creation time, newest first.
func (r *MongoAppointmentRepo) ListRecent(limit int) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing recent appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
