package database

import (
	"context"
	"time"

	"fotoagenda/config"
	"fotoagenda/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is set by InitDB when STORE_DRIVER=mongo.
var MongoClient *mongo.Client

// InitDB connects to DATABASE_URL and exits the process if Mongo is unreachable.
func InitDB() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(5 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	MongoClient = client
	logger.Info("Connected to MongoDB", zap.String("database", config.AppConfig.MongoDatabase))
}

// MongoDatabase returns the booking database.
func MongoDatabase() *mongo.Database {
	return MongoClient.Database(config.AppConfig.MongoDatabase)
}
