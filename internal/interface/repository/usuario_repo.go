// internal/interface/repository/usuario_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUsuarioRepository implements the UsuarioRepository interface
type MongoUsuarioRepository struct {
	collection *mongo.Collection
}

// NewMongoUsuarioRepository creates a new MongoDB usuario repository
func NewMongoUsuarioRepository(db *mongo.Database) repository.UsuarioRepository {
	collection := db.Collection("usuarios")

	ctx := context.Background()

	emailIndex := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{emailIndex})

	return &MongoUsuarioRepository{
		collection: collection,
	}
}

// Save inserts a usuario, generating its id
func (r *MongoUsuarioRepository) Save(ctx context.Context, usuario *entity.Usuario) error {
	if usuario.ID == "" {
		usuario.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, usuario)
	return err
}

// FindByID finds a usuario by id, returning nil when absent
func (r *MongoUsuarioRepository) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

// FindByEmail finds a usuario by email, returning nil when absent
func (r *MongoUsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

// FindAll returns every usuario
func (r *MongoUsuarioRepository) FindAll(ctx context.Context) ([]*entity.Usuario, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var usuarios []*entity.Usuario
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, err
	}

	return usuarios, nil
}

// Update replaces a usuario document
func (r *MongoUsuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": usuario.ID}, usuario)
	if err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no usuario found with id: %s", usuario.ID)
	}
	return nil
}

// UpdateFcmToken stores the device token for push notifications
func (r *MongoUsuarioRepository) UpdateFcmToken(ctx context.Context, id, token string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"fcmToken": token}},
	)
	if err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no usuario found with id: %s", id)
	}
	return nil
}

// Delete removes a usuario
func (r *MongoUsuarioRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no usuario found with id: %s", id)
	}
	return nil
}
