// internal/interface/repository/venta_repo.go
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

// MongoVentaRepository implements the VentaRepository interface
type MongoVentaRepository struct {
	collection *mongo.Collection
}

// NewMongoVentaRepository creates a new MongoDB venta repository
func NewMongoVentaRepository(db *mongo.Database) repository.VentaRepository {
	collection := db.Collection("ventas")

	ctx := context.Background()

	// Index on clienteId: the feature calculator reads full client history
	// on every prediction.
	clienteIndex := mongo.IndexModel{
		Keys: bson.M{"clienteId": 1},
	}

	agenteIndex := mongo.IndexModel{
		Keys: bson.M{"agenteId": 1},
	}

	estadoIndex := mongo.IndexModel{
		Keys: bson.M{"estadoVenta": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		clienteIndex,
		agenteIndex,
		estadoIndex,
	})

	return &MongoVentaRepository{
		collection: collection,
	}
}

// Save inserts a venta, generating its id
func (r *MongoVentaRepository) Save(ctx context.Context, venta *entity.Venta) error {
	if venta.ID == "" {
		venta.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, venta)
	return err
}

// FindByID finds a venta by id, returning nil when absent
func (r *MongoVentaRepository) FindByID(ctx context.Context, id string) (*entity.Venta, error) {
	var venta entity.Venta
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&venta)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &venta, nil
}

// FindAll returns every venta, newest first
func (r *MongoVentaRepository) FindAll(ctx context.Context) ([]*entity.Venta, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fechaVenta", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ventas []*entity.Venta
	if err := cursor.All(ctx, &ventas); err != nil {
		return nil, err
	}

	return ventas, nil
}

// FindByClienteID returns the full sale history of a client
func (r *MongoVentaRepository) FindByClienteID(ctx context.Context, clienteID string) ([]*entity.Venta, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"clienteId": clienteID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ventas []*entity.Venta
	if err := cursor.All(ctx, &ventas); err != nil {
		return nil, err
	}

	return ventas, nil
}

// FindByAgenteID returns all sales handled by an agent
func (r *MongoVentaRepository) FindByAgenteID(ctx context.Context, agenteID string) ([]*entity.Venta, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"agenteId": agenteID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ventas []*entity.Venta
	if err := cursor.All(ctx, &ventas); err != nil {
		return nil, err
	}

	return ventas, nil
}

// FindByEstado returns all sales in the given state
func (r *MongoVentaRepository) FindByEstado(ctx context.Context, estado entity.EstadoVenta) ([]*entity.Venta, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"estadoVenta": estado})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ventas []*entity.Venta
	if err := cursor.All(ctx, &ventas); err != nil {
		return nil, err
	}

	return ventas, nil
}

// Update replaces a venta document
func (r *MongoVentaRepository) Update(ctx context.Context, venta *entity.Venta) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": venta.ID}, venta)
	if err != nil {
		return fmt.Errorf("failed to update venta: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no venta found with id: %s", venta.ID)
	}
	return nil
}

// Delete removes a venta
func (r *MongoVentaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no venta found with id: %s", id)
	}
	return nil
}

// MongoDetalleVentaRepository implements the DetalleVentaRepository interface
type MongoDetalleVentaRepository struct {
	collection *mongo.Collection
}

// NewMongoDetalleVentaRepository creates a new MongoDB sale-line repository
func NewMongoDetalleVentaRepository(db *mongo.Database) repository.DetalleVentaRepository {
	collection := db.Collection("detalleVenta")

	ventaIndex := mongo.IndexModel{
		Keys: bson.M{"ventaId": 1},
	}
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{ventaIndex})

	return &MongoDetalleVentaRepository{
		collection: collection,
	}
}

func (r *MongoDetalleVentaRepository) Save(ctx context.Context, detalle *entity.DetalleVenta) error {
	if detalle.ID == "" {
		detalle.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, detalle)
	return err
}

func (r *MongoDetalleVentaRepository) FindByVentaID(ctx context.Context, ventaID string) ([]*entity.DetalleVenta, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ventaId": ventaID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var detalles []*entity.DetalleVenta
	if err := cursor.All(ctx, &detalles); err != nil {
		return nil, err
	}

	return detalles, nil
}

func (r *MongoDetalleVentaRepository) DeleteByVentaID(ctx context.Context, ventaID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"ventaId": ventaID})
	return err
}
