package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

const collectionEntries = "food_entries"

// EntryRepository implements ports.EntryRepository using MongoDB.
type EntryRepository struct {
	col *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{col: db.Collection(collectionEntries)}
}

type nutrientDocument struct {
	Calories    float64  `bson:"calories"`
	Protein     float64  `bson:"protein"`
	Carbs       float64  `bson:"carbs"`
	Fat         float64  `bson:"fat"`
	Sugar       float64  `bson:"sugar"`
	Confidence  float64  `bson:"confidence"`
	Ingredients []string `bson:"ingredients"`
}

type entryDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	UserID          string             `bson:"user_id"`
	FoodText        string             `bson:"food_text"`
	NutrientProfile nutrientDocument   `bson:"nutrient_profile"`
	Meal            string             `bson:"meal"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func newEntryDocument(e *domain.FoodEntry) entryDocument {
	p := e.NutrientProfile
	ingredients := p.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return entryDocument{
		UserID:   e.UserID,
		FoodText: e.FoodText,
		NutrientProfile: nutrientDocument{
			Calories:    p.Calories,
			Protein:     p.Protein,
			Carbs:       p.Carbs,
			Fat:         p.Fat,
			Sugar:       p.Sugar,
			Confidence:  p.Confidence,
			Ingredients: ingredients,
		},
		Meal:      string(e.Meal),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (d entryDocument) toDomain() *domain.FoodEntry {
	ingredients := d.NutrientProfile.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return &domain.FoodEntry{
		ID:       d.ID.Hex(),
		UserID:   d.UserID,
		FoodText: d.FoodText,
		NutrientProfile: domain.NutrientProfile{
			Calories:    d.NutrientProfile.Calories,
			Protein:     d.NutrientProfile.Protein,
			Carbs:       d.NutrientProfile.Carbs,
			Fat:         d.NutrientProfile.Fat,
			Sugar:       d.NutrientProfile.Sugar,
			Confidence:  d.NutrientProfile.Confidence,
			Ingredients: ingredients,
		},
		Meal:      domain.Meal(d.Meal),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// Create inserts a new entry document. Timestamps are truncated to the
// millisecond precision BSON dates keep.
func (r *EntryRepository) Create(ctx context.Context, e *domain.FoodEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := newEntryDocument(e)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert food entry: %w", err)
	}

	e.ID = doc.ID.Hex()
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

// Find returns the entries matching f, newest first.
func (r *EntryRepository) Find(ctx context.Context, f ports.EntryFilter, page ports.Pagination) ([]*domain.FoodEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, entryQuery(f), findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("find food entries: %w", err)
	}

	var docs []entryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode food entries: %w", err)
	}

	out := make([]*domain.FoodEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Delete removes an entry and returns the removed document.
func (r *EntryRepository) Delete(ctx context.Context, id, ownerID string) (*domain.FoodEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if ownerID != "" {
		filter["user_id"] = ownerID
	}

	var doc entryDocument
	if err := r.col.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("delete food entry: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the indexes backing the per-user time queries.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "meal", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// entryQuery translates f into a Mongo filter document.
func entryQuery(f ports.EntryFilter) bson.M {
	q := bson.M{"user_id": f.UserID}
	if f.Range != nil {
		q["created_at"] = bson.M{"$gte": f.Range.From.UTC(), "$lt": f.Range.To.UTC()}
	}
	if f.Meal != nil {
		q["meal"] = string(*f.Meal)
	}
	return q
}

// findOptions sorts newest first with the id as tie breaker and applies page.
func findOptions(page ports.Pagination) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if page.Offset > 0 {
		opts.SetSkip(int64(page.Offset))
	}
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}
	return opts
}
