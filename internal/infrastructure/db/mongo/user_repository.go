package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

const (
	collectionUsers = "users"

	indexUsername = "username_unique"
	indexEmail    = "email_unique"
)

// UserRepository implements ports.UserRepository using MongoDB.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDocument struct {
	ID                  primitive.ObjectID `bson:"_id"`
	Username            string             `bson:"username"`
	Email               string             `bson:"email"`
	PasswordHash        string             `bson:"password_hash,omitempty"`
	Age                 int                `bson:"age"`
	Gender              string             `bson:"gender"`
	Weight              float64            `bson:"weight"`
	Height              float64            `bson:"height"`
	ActivityLevel       float64            `bson:"activity_level"`
	MaintenanceCalories int                `bson:"maintenance_calories"`
	IsActive            bool               `bson:"is_active"`
	IsAdmin             bool               `bson:"is_admin"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func newUserDocument(u *domain.User) userDocument {
	return userDocument{
		Username:            u.Username,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Age:                 u.Age,
		Gender:              string(u.Gender),
		Weight:              u.WeightKg,
		Height:              u.HeightCm,
		ActivityLevel:       u.ActivityFactor,
		MaintenanceCalories: u.MaintenanceCalories,
		IsActive:            u.IsActive,
		IsAdmin:             u.IsAdmin,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:                  d.ID.Hex(),
		Username:            d.Username,
		Email:               d.Email,
		PasswordHash:        d.PasswordHash,
		Age:                 d.Age,
		Gender:              domain.Gender(d.Gender),
		WeightKg:            d.Weight,
		HeightCm:            d.Height,
		ActivityFactor:      d.ActivityLevel,
		MaintenanceCalories: d.MaintenanceCalories,
		IsActive:            d.IsActive,
		IsAdmin:             d.IsAdmin,
		CreatedAt:           d.CreatedAt.UTC(),
		UpdatedAt:           d.UpdatedAt.UTC(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := newUserDocument(u)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return conflictFromError(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	u.ID = doc.ID.Hex()
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns a page of users matching f together with collection counts.
func (r *UserRepository) List(ctx context.Context, f ports.UserFilter, page ports.Pagination) ([]*domain.User, ports.UserCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var counts ports.UserCounts
	query := userQuery(f)

	cur, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, counts, fmt.Errorf("list users: %w", err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, counts, fmt.Errorf("decode users: %w", err)
	}

	if counts.Total, err = r.col.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, counts, fmt.Errorf("count users: %w", err)
	}
	if counts.Active, err = r.col.CountDocuments(ctx, bson.M{"is_active": true}); err != nil {
		return nil, counts, fmt.Errorf("count active users: %w", err)
	}
	if counts.Matching, err = r.col.CountDocuments(ctx, query); err != nil {
		return nil, counts, fmt.Errorf("count matching users: %w", err)
	}

	out := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, counts, nil
}

// Update replaces the stored user document in a single write.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := newUserDocument(u)
	doc.ID = oid
	doc.UpdatedAt = now

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return conflictFromError(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}

	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC().Truncate(time.Millisecond),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("deactivate user: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique username and email indexes. Usernames
// compare case-insensitively.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName(indexUsername).
				SetUnique(true).
				SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(indexEmail).SetUnique(true),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// userQuery translates f into a Mongo filter document. The search term is
// matched literally.
func userQuery(f ports.UserFilter) bson.M {
	q := bson.M{}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"username": re},
			bson.M{"email": re},
		}
	}
	if f.Active != nil {
		q["is_active"] = *f.Active
	}
	if f.AdminOnly {
		q["is_admin"] = true
	}
	return q
}

// conflictFromError names the unique index a duplicate-key error hit.
func conflictFromError(err error) *domain.ConflictError {
	return &domain.ConflictError{Field: duplicateField(err.Error())}
}

func duplicateField(msg string) string {
	switch {
	case strings.Contains(msg, indexUsername), strings.Contains(msg, "username"):
		return "username"
	case strings.Contains(msg, indexEmail), strings.Contains(msg, "email"):
		return "email"
	default:
		return ""
	}
}
