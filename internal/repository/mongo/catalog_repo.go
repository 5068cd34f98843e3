package mongo

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const catalogCollectionName = "exercise_catalog"

// mongoCatalogRepository implements repository.ExerciseCatalogRepository.
// Seeded and custom exercises live in the same collection; reads do not
// distinguish between them.
type mongoCatalogRepository struct {
	collection *mongo.Collection
}

// NewMongoCatalogRepository creates an exercise catalog repository backed by
// MongoDB.
func NewMongoCatalogRepository(db *mongo.Database) repository.ExerciseCatalogRepository {
	return &mongoCatalogRepository{
		collection: db.Collection(catalogCollectionName),
	}
}

// Create inserts a new catalog exercise (typically a user-added custom one).
func (r *mongoCatalogRepository) Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error) {
	if exercise.Name == "" || exercise.BodyPart == "" {
		return primitive.NilObjectID, errors.New("exercise name and body part are required")
	}
	if len(exercise.Equipment) == 0 {
		exercise.Equipment = []string{domain.EquipmentBodyweight}
	}

	exercise.ID = primitive.NewObjectID()
	exercise.BodyPart = strings.ToLower(exercise.BodyPart)
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a catalog exercise by its ID.
func (r *mongoCatalogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	var exercise domain.CatalogExercise
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetByBodyPart retrieves every exercise targeting the given body part,
// sorted by id so snapshots are stable.
func (r *mongoCatalogRepository) GetByBodyPart(ctx context.Context, bodyPart string) ([]domain.CatalogExercise, error) {
	filter := bson.M{"bodyPart": strings.ToLower(bodyPart)}
	return r.find(ctx, filter)
}

// GetByEquipment retrieves every exercise performable with the given piece
// of equipment.
func (r *mongoCatalogRepository) GetByEquipment(ctx context.Context, equipment string) ([]domain.CatalogExercise, error) {
	filter := bson.M{"equipment": strings.ToLower(equipment)}
	return r.find(ctx, filter)
}

// Search runs a free-text query over names and instructions. Requires the
// text index from EnsureCatalogIndexes.
func (r *mongoCatalogRepository) Search(ctx context.Context, query string) ([]domain.CatalogExercise, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	return r.find(ctx, filter)
}

func (r *mongoCatalogRepository) find(ctx context.Context, filter bson.M) ([]domain.CatalogExercise, error) {
	var exercises []domain.CatalogExercise
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Update modifies an existing catalog exercise.
func (r *mongoCatalogRepository) Update(ctx context.Context, exercise *domain.CatalogExercise) error {
	if exercise.ID == primitive.NilObjectID {
		return errors.New("exercise ID is required for update")
	}
	if exercise.Name == "" {
		return errors.New("exercise name cannot be empty")
	}

	filter := bson.M{"_id": exercise.ID}
	update := bson.M{
		"$set": bson.M{
			"name":         exercise.Name,
			"bodyPart":     strings.ToLower(exercise.BodyPart),
			"category":     exercise.Category,
			"equipment":    exercise.Equipment,
			"difficulty":   exercise.Difficulty,
			"instructions": exercise.Instructions,
			"updatedAt":    time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a catalog exercise.
func (r *mongoCatalogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCatalogIndexes creates necessary indexes for the catalog collection.
func EnsureCatalogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// The engine materializes snapshots by body part.
			Keys:    bson.D{{Key: "bodyPart", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "equipment", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "instructions", Value: "text"}},
			Options: options.Index().SetName("catalog_text_search"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
