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

var ErrNotFound = errors.New("document not found")

const chatCollection = "chats"

type ChatRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func NewChatRepository(db *mongo.Database, logger *slog.Logger) (*ChatRepository, error) {
	repo := &ChatRepository{
		collection: db.Collection(chatCollection),
		logger:     logger,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("create chat indexes: %w", err)
	}
	return repo, nil
}

func (r *ChatRepository) Save(ctx context.Context, chat *entity.Chat) error {
	chat.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": chat.ID}, chat, opts)
	if err != nil {
		metrics.IncError("mongodb", "write")
		return fmt.Errorf("save chat %s: %w", chat.ID, err)
	}
	metrics.IncDBOp(chatCollection, "save")
	return nil
}

func (r *ChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	var chat entity.Chat
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&chat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.IncError("mongodb", "read")
		return nil, fmt.Errorf("get chat %s: %w", id, err)
	}
	metrics.IncDBOp(chatCollection, "get")
	return &chat, nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Chat, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"project_files": 0})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID, "is_active": true}, opts)
	if err != nil {
		metrics.IncError("mongodb", "read")
		return nil, fmt.Errorf("list chats for %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var chats []*entity.Chat
	if err := cursor.All(ctx, &chats); err != nil {
		metrics.IncError("mongodb", "decode")
		return nil, fmt.Errorf("decode chats for %s: %w", userID, err)
	}
	metrics.IncDBOp(chatCollection, "list")
	return chats, nil
}

func (r *ChatRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		metrics.IncError("mongodb", "write")
		return fmt.Errorf("delete chat %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	metrics.IncDBOp(chatCollection, "delete")
	return nil
}
