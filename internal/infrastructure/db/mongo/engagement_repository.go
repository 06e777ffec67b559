package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghive/blog-backend/internal/core/domain"
)

const (
	likesCollection    = "likes"
	commentsCollection = "comments"
)

// EngagementRepository persists likes and comments.
type EngagementRepository struct {
	likes    *mongo.Collection
	comments *mongo.Collection
}

func NewEngagementRepository(db *mongo.Database) *EngagementRepository {
	return &EngagementRepository{
		likes:    db.Collection(likesCollection),
		comments: db.Collection(commentsCollection),
	}
}

type mongoLike struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id"`
	CreatedAt int64              `bson:"created_at"`
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id"`
	Content   string             `bson:"content"`
	CreatedAt int64              `bson:"created_at"`
}

// InsertLike adds a like record. The unique {post_id, user_id} index turns
// a concurrent or repeated insert into a duplicate-key error, reported as
// domain.ErrAlreadyLiked.
func (r *EngagementRepository) InsertLike(ctx context.Context, like *domain.Like) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLike{
		PostID:    like.PostID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt.Unix(),
	}

	if _, err := r.likes.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyLiked
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *EngagementRepository) CountLikesByPost(ctx context.Context, postID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.likes.CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}

func (r *EngagementRepository) ListLikesByPost(ctx context.Context, postID string) ([]domain.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.likes.Find(ctx, bson.M{"post_id": postID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer cur.Close(ctx)

	likes := make([]domain.Like, 0)
	for cur.Next(ctx) {
		var ml mongoLike
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode like: %w", err)
		}
		likes = append(likes, domain.Like{
			ID:        ml.ID.Hex(),
			PostID:    ml.PostID,
			UserID:    ml.UserID,
			CreatedAt: unixToTime(ml.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}

func (r *EngagementRepository) CountAllLikes(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.likes.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count all likes: %w", err)
	}
	return n, nil
}

func (r *EngagementRepository) InsertComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Unix(),
	}

	res, err := r.comments.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListCommentsByPost returns comments for a post, oldest first.
func (r *EngagementRepository) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.comments.Find(ctx, bson.M{"post_id": postID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	comments := make([]domain.Comment, 0)
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, domain.Comment{
			ID:        mc.ID.Hex(),
			PostID:    mc.PostID,
			UserID:    mc.UserID,
			Content:   mc.Content,
			CreatedAt: unixToTime(mc.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *EngagementRepository) CountAllComments(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.comments.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count all comments: %w", err)
	}
	return n, nil
}

// DeleteByPost removes all engagement records for a deleted post.
func (r *EngagementRepository) DeleteByPost(ctx context.Context, postID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.likes.DeleteMany(ctx, bson.M{"post_id": postID}); err != nil {
		return fmt.Errorf("delete likes: %w", err)
	}
	if _, err := r.comments.DeleteMany(ctx, bson.M{"post_id": postID}); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the engagement invariants rely on, most
// importantly the unique {post_id, user_id} pair on likes.
func (r *EngagementRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = r.comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
