package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"creatorlab/internal/model"
)

// ContentStore persists published content and its community comments
type ContentStore interface {
	Save(ctx context.Context, content *model.Content) (string, error)
	AppendComment(ctx context.Context, contentID string, comment model.CommunityComment) (string, error)
	List(ctx context.Context) ([]*model.Content, error)
	GetByID(ctx context.Context, id string) (*model.Content, error)
	ListByAuthor(ctx context.Context, authorName string) ([]*model.Content, error)
}

type contentRepo struct {
	collection *mongo.Collection
}

// NewContentRepo creates a MongoDB backed content store
func NewContentRepo(db *mongo.Database) ContentStore {
	return &contentRepo{
		collection: db.Collection("contents"),
	}
}

func (r *contentRepo) Save(ctx context.Context, content *model.Content) (string, error) {
	content.ID = ""
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now().UTC()
	}
	if content.CommunityFeedback == nil {
		content.CommunityFeedback = []model.CommunityComment{}
	}

	result, err := r.collection.InsertOne(ctx, content)
	if err != nil {
		return "", storeErr("save", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", storeErr("save", errors.New("unexpected inserted id type"))
	}
	content.ID = oid.Hex()
	return content.ID, nil
}

func (r *contentRepo) AppendComment(ctx context.Context, contentID string, comment model.CommunityComment) (string, error) {
	oid, err := primitive.ObjectIDFromHex(contentID)
	if err != nil {
		return "", storeErr("append comment", ErrNotFound)
	}
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"communityFeedback": comment}},
	)
	if err != nil {
		return "", storeErr("append comment", err)
	}
	if res.MatchedCount == 0 {
		return "", storeErr("append comment", ErrNotFound)
	}
	return comment.ID, nil
}

func (r *contentRepo) List(ctx context.Context) ([]*model.Content, error) {
	return r.find(ctx, "list", bson.M{})
}

func (r *contentRepo) ListByAuthor(ctx context.Context, authorName string) ([]*model.Content, error) {
	return r.find(ctx, "list by author", bson.M{"author.name": authorName})
}

func (r *contentRepo) find(ctx context.Context, op string, filter bson.M) ([]*model.Content, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer cursor.Close(ctx)

	contents := []*model.Content{}
	if err := cursor.All(ctx, &contents); err != nil {
		return nil, storeErr(op, err)
	}
	return contents, nil
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*model.Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, storeErr("get", ErrNotFound)
	}

	var content model.Content
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeErr("get", ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get", err)
	}
	content.ID = id
	return &content, nil
}

// EnsureIndexes creates the indexes the list queries rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("contents").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "author.name", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	return storeErr("ensure indexes", err)
}
