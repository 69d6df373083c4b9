// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fotoagenda/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a MongoDB ScheduleRepository.
func NewMongoScheduleRepo(ctx context.Context, db *mongo.Database) (ScheduleRepository, error) {
	r := &mongoScheduleRepo{coll: db.Collection("weekly_schedule")}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "weekday", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_business_weekday"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule indexes: %w", err)
	}
	return r, nil
}

func (r *mongoScheduleRepo) GetByWeekday(ctx context.Context, businessID string, weekday int) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var row models.WeeklySchedule
	err := r.coll.FindOne(ctx, bson.M{"businessId": businessID, "weekday": weekday}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}
	return &row, nil
}

func (r *mongoScheduleRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.WeeklySchedule
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding schedule: %w", err)
	}
	return rows, nil
}

func (r *mongoScheduleRepo) Upsert(ctx context.Context, schedule models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"businessId": schedule.BusinessID, "weekday": schedule.Weekday}
	update := bson.M{"$set": bson.M{"openTime": schedule.OpenTime, "closeTime": schedule.CloseTime}}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) SeedIfEmpty(ctx context.Context, businessID string, rows []models.WeeklySchedule) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return false, fmt.Errorf("failed to count schedule rows: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	docs := make([]interface{}, len(rows))
	for i, row := range rows {
		docs[i] = row
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return false, fmt.Errorf("failed to seed schedule: %w", err)
	}
	return true, nil
}
