package container

import (
	"log/slog"

	"github.com/eventdesk/server/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client
	Store         *models.Store
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client) *Container {
	return &Container{
		Logger:        logger,
		MongoDBClient: mongoDBClient,
		Store:         models.NewStore(mongoDBClient),
	}
}
