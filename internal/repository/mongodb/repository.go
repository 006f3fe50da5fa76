package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
)

// ErrNotFound indicates the requested document does not exist.
var ErrNotFound = errors.New("document not found")

const (
	farmsCollection    = "farms"
	paddocksCollection = "paddocks"
	herdsCollection    = "herds"
	plansCollection    = "grazing_plans"
)

// Repository defines the storage operations the planner relies on.
type Repository interface {
	CreateFarm(ctx context.Context, farm models.Farm) (models.Farm, error)
	GetFarm(ctx context.Context, id string) (models.Farm, error)
	ListFarms(ctx context.Context) ([]models.Farm, error)
	DeleteFarm(ctx context.Context, id string) error

	CreatePaddock(ctx context.Context, paddock models.Paddock) (models.Paddock, error)
	GetPaddock(ctx context.Context, id string) (models.Paddock, error)
	ListPaddocks(ctx context.Context, farmID string) ([]models.Paddock, error)

	CreateHerd(ctx context.Context, herd models.Herd) (models.Herd, error)
	GetHerd(ctx context.Context, id string) (models.Herd, error)
	ListHerds(ctx context.Context, farmID string) ([]models.Herd, error)

	SavePlanRecord(ctx context.Context, record models.PlanRecord) (models.PlanRecord, error)
	ListPlanRecords(ctx context.Context, farmID string, limit int64) ([]models.PlanRecord, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
	}, nil
}

// CreateFarm inserts a farm and returns it with its generated id.
func (r *MongoDBRepository) CreateFarm(ctx context.Context, farm models.Farm) (models.Farm, error) {
	farm.ID = primitive.NewObjectID().Hex()
	farm.CreatedAt = time.Now().UTC()
	if _, err := r.collection(farmsCollection).InsertOne(ctx, farm); err != nil {
		return models.Farm{}, fmt.Errorf("failed to insert farm: %w", err)
	}
	return farm, nil
}

// GetFarm fetches a farm by id.
func (r *MongoDBRepository) GetFarm(ctx context.Context, id string) (models.Farm, error) {
	var farm models.Farm
	err := r.collection(farmsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&farm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Farm{}, ErrNotFound
	}
	if err != nil {
		return models.Farm{}, fmt.Errorf("failed to load farm %s: %w", id, err)
	}
	return farm, nil
}

// ListFarms returns all stored farms.
func (r *MongoDBRepository) ListFarms(ctx context.Context) ([]models.Farm, error) {
	cursor, err := r.collection(farmsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	var farms []models.Farm
	if err := cursor.All(ctx, &farms); err != nil {
		return nil, fmt.Errorf("failed to decode farms: %w", err)
	}
	return farms, nil
}

// DeleteFarm removes a farm and everything attached to it.
func (r *MongoDBRepository) DeleteFarm(ctx context.Context, id string) error {
	res, err := r.collection(farmsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete farm %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	for _, coll := range []string{paddocksCollection, herdsCollection, plansCollection} {
		if _, err := r.collection(coll).DeleteMany(ctx, bson.M{"farm_id": id}); err != nil {
			return fmt.Errorf("failed to delete %s for farm %s: %w", coll, id, err)
		}
	}
	return nil
}

// CreatePaddock inserts a paddock and returns it with its generated id.
func (r *MongoDBRepository) CreatePaddock(ctx context.Context, paddock models.Paddock) (models.Paddock, error) {
	paddock.ID = primitive.NewObjectID().Hex()
	paddock.CreatedAt = time.Now().UTC()
	if _, err := r.collection(paddocksCollection).InsertOne(ctx, paddock); err != nil {
		return models.Paddock{}, fmt.Errorf("failed to insert paddock: %w", err)
	}
	return paddock, nil
}

// GetPaddock fetches a paddock by id.
func (r *MongoDBRepository) GetPaddock(ctx context.Context, id string) (models.Paddock, error) {
	var paddock models.Paddock
	err := r.collection(paddocksCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&paddock)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Paddock{}, ErrNotFound
	}
	if err != nil {
		return models.Paddock{}, fmt.Errorf("failed to load paddock %s: %w", id, err)
	}
	return paddock, nil
}

// ListPaddocks returns a farm's paddocks.
func (r *MongoDBRepository) ListPaddocks(ctx context.Context, farmID string) ([]models.Paddock, error) {
	cursor, err := r.collection(paddocksCollection).Find(ctx, bson.M{"farm_id": farmID})
	if err != nil {
		return nil, fmt.Errorf("failed to list paddocks: %w", err)
	}
	var paddocks []models.Paddock
	if err := cursor.All(ctx, &paddocks); err != nil {
		return nil, fmt.Errorf("failed to decode paddocks: %w", err)
	}
	return paddocks, nil
}

// CreateHerd inserts a herd and returns it with its generated id.
func (r *MongoDBRepository) CreateHerd(ctx context.Context, herd models.Herd) (models.Herd, error) {
	herd.ID = primitive.NewObjectID().Hex()
	herd.CreatedAt = time.Now().UTC()
	if _, err := r.collection(herdsCollection).InsertOne(ctx, herd); err != nil {
		return models.Herd{}, fmt.Errorf("failed to insert herd: %w", err)
	}
	return herd, nil
}

// GetHerd fetches a herd by id.
func (r *MongoDBRepository) GetHerd(ctx context.Context, id string) (models.Herd, error) {
	var herd models.Herd
	err := r.collection(herdsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&herd)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Herd{}, ErrNotFound
	}
	if err != nil {
		return models.Herd{}, fmt.Errorf("failed to load herd %s: %w", id, err)
	}
	return herd, nil
}

// ListHerds returns a farm's herds.
func (r *MongoDBRepository) ListHerds(ctx context.Context, farmID string) ([]models.Herd, error) {
	cursor, err := r.collection(herdsCollection).Find(ctx, bson.M{"farm_id": farmID})
	if err != nil {
		return nil, fmt.Errorf("failed to list herds: %w", err)
	}
	var herds []models.Herd
	if err := cursor.All(ctx, &herds); err != nil {
		return nil, fmt.Errorf("failed to decode herds: %w", err)
	}
	return herds, nil
}

// SavePlanRecord stores a computed grazing recommendation.
func (r *MongoDBRepository) SavePlanRecord(ctx context.Context, record models.PlanRecord) (models.PlanRecord, error) {
	record.ID = primitive.NewObjectID().Hex()
	record.CreatedAt = time.Now().UTC()
	if _, err := r.collection(plansCollection).InsertOne(ctx, record); err != nil {
		return models.PlanRecord{}, fmt.Errorf("failed to insert plan record: %w", err)
	}
	return record, nil
}

// ListPlanRecords returns a farm's most recent plan history, newest first.
func (r *MongoDBRepository) ListPlanRecords(ctx context.Context, farmID string, limit int64) ([]models.PlanRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.collection(plansCollection).Find(ctx, bson.M{"farm_id": farmID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan records: %w", err)
	}
	var records []models.PlanRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode plan records: %w", err)
	}
	return records, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}
