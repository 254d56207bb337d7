package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dbmanager/internal/model"
)

// CatsCollection is the collection holding cat documents.
const CatsCollection = "cats"

// CatRepository handles CRUD for cat documents.
type CatRepository struct {
	coll *mongo.Collection
}

func NewCatRepository(db *mongo.Database) *CatRepository {
	return &CatRepository{coll: db.Collection(CatsCollection)}
}

// Create inserts a cat. Features are stored as given, duplicates included.
func (r *CatRepository) Create(ctx context.Context, name string, age int, features []string) (primitive.ObjectID, error) {
	if features == nil {
		features = []string{}
	}
	cat := model.Cat{Name: name, Age: age, Features: features}
	res, err := r.coll.InsertOne(ctx, cat)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("create cat: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *CatRepository) ListAll(ctx context.Context) ([]model.Cat, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list cats: %w", err)
	}
	cats := []model.Cat{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode cats: %w", err)
	}
	return cats, nil
}

func (r *CatRepository) FindByName(ctx context.Context, name string) (*model.Cat, error) {
	var cat model.Cat
	err := r.coll.FindOne(ctx, byName(name)).Decode(&cat)
	switch {
	case err == nil:
		return &cat, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, fmt.Errorf("find cat %q: %w", name, ErrNotFound)
	default:
		return nil, fmt.Errorf("find cat: %w", err)
	}
}

// UpdateAge sets the age of the first cat named name and reports whether it changed.
func (r *CatRepository) UpdateAge(ctx context.Context, name string, age int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, byName(name), setAge(age))
	if err != nil {
		return false, fmt.Errorf("update cat age: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// AddFeature adds feature to the cat's feature set. It reports false when the
// cat is missing or already has the feature.
func (r *CatRepository) AddFeature(ctx context.Context, name, feature string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, byName(name), addFeature(feature))
	if err != nil {
		return false, fmt.Errorf("add cat feature: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *CatRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, byName(name))
	if err != nil {
		return false, fmt.Errorf("delete cat: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// DeleteAll removes every cat and returns how many were deleted.
func (r *CatRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete all cats: %w", err)
	}
	return res.DeletedCount, nil
}

func byName(name string) bson.D {
	return bson.D{{Key: "name", Value: name}}
}

func setAge(age int) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "age", Value: age}}}}
}

func addFeature(feature string) bson.D {
	return bson.D{{Key: "$addToSet", Value: bson.D{{Key: "features", Value: feature}}}}
}
