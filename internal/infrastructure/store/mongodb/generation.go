package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/infrastructure/metrics"
)

const generationCollection = "generations"

type GenerationRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func NewGenerationRepository(db *mongo.Database, logger *slog.Logger) (*GenerationRepository, error) {
	repo := &GenerationRepository{
		collection: db.Collection(generationCollection),
		logger:     logger,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("create generation indexes: %w", err)
	}
	return repo, nil
}

func (r *GenerationRepository) Create(ctx context.Context, gen *entity.Generation) error {
	if _, err := r.collection.InsertOne(ctx, gen); err != nil {
		metrics.IncError("mongodb", "write")
		return fmt.Errorf("insert generation %s: %w", gen.ID, err)
	}
	metrics.IncDBOp(generationCollection, "insert")
	return nil
}

func (r *GenerationRepository) Update(ctx context.Context, gen *entity.Generation) error {
	gen.UpdatedAt = time.Now().UTC()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": gen.ID}, gen)
	if err != nil {
		metrics.IncError("mongodb", "write")
		return fmt.Errorf("update generation %s: %w", gen.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	metrics.IncDBOp(generationCollection, "update")
	return nil
}

func (r *GenerationRepository) GetByID(ctx context.Context, id string) (*entity.Generation, error) {
	var gen entity.Generation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&gen)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.IncError("mongodb", "read")
		return nil, fmt.Errorf("get generation %s: %w", id, err)
	}
	metrics.IncDBOp(generationCollection, "get")
	return &gen, nil
}

func (r *GenerationRepository) List(ctx context.Context, limit int) ([]*entity.Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		metrics.IncError("mongodb", "read")
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer cursor.Close(ctx)

	var gens []*entity.Generation
	if err := cursor.All(ctx, &gens); err != nil {
		metrics.IncError("mongodb", "decode")
		return nil, fmt.Errorf("decode generations: %w", err)
	}
	metrics.IncDBOp(generationCollection, "list")
	return gens, nil
}
