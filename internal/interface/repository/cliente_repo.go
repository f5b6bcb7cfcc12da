// internal/interface/repository/cliente_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoClienteRepository implements the ClienteRepository interface
type MongoClienteRepository struct {
	collection *mongo.Collection
}

// NewMongoClienteRepository creates a new MongoDB cliente repository
func NewMongoClienteRepository(db *mongo.Database) repository.ClienteRepository {
	collection := db.Collection("clientes")

	usuarioIndex := mongo.IndexModel{
		Keys: bson.M{"usuarioId": 1},
	}
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{usuarioIndex})

	return &MongoClienteRepository{
		collection: collection,
	}
}

func (r *MongoClienteRepository) Save(ctx context.Context, cliente *entity.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, cliente)
	return err
}

func (r *MongoClienteRepository) FindByID(ctx context.Context, id string) (*entity.Cliente, error) {
	var cliente entity.Cliente
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cliente)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cliente, nil
}

func (r *MongoClienteRepository) FindByUsuarioID(ctx context.Context, usuarioID string) (*entity.Cliente, error) {
	var cliente entity.Cliente
	err := r.collection.FindOne(ctx, bson.M{"usuarioId": usuarioID}).Decode(&cliente)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cliente, nil
}

func (r *MongoClienteRepository) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clientes []*entity.Cliente
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, err
	}

	return clientes, nil
}

func (r *MongoClienteRepository) Update(ctx context.Context, cliente *entity.Cliente) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": cliente.ID}, cliente)
	if err != nil {
		return fmt.Errorf("failed to update cliente: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no cliente found with id: %s", cliente.ID)
	}
	return nil
}

func (r *MongoClienteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no cliente found with id: %s", id)
	}
	return nil
}

// MongoAgenteRepository implements the AgenteRepository interface
type MongoAgenteRepository struct {
	collection *mongo.Collection
}

// NewMongoAgenteRepository creates a new MongoDB agente repository
func NewMongoAgenteRepository(db *mongo.Database) repository.AgenteRepository {
	return &MongoAgenteRepository{
		collection: db.Collection("agentes"),
	}
}

func (r *MongoAgenteRepository) Save(ctx context.Context, agente *entity.Agente) error {
	if agente.ID == "" {
		agente.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, agente)
	return err
}

func (r *MongoAgenteRepository) FindByID(ctx context.Context, id string) (*entity.Agente, error) {
	var agente entity.Agente
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&agente)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &agente, nil
}

func (r *MongoAgenteRepository) FindAll(ctx context.Context) ([]*entity.Agente, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var agentes []*entity.Agente
	if err := cursor.All(ctx, &agentes); err != nil {
		return nil, err
	}

	return agentes, nil
}

func (r *MongoAgenteRepository) Update(ctx context.Context, agente *entity.Agente) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": agente.ID}, agente)
	if err != nil {
		return fmt.Errorf("failed to update agente: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no agente found with id: %s", agente.ID)
	}
	return nil
}

func (r *MongoAgenteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no agente found with id: %s", id)
	}
	return nil
}
