// internal/interface/repository/catalogo_repo.go
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

// MongoProveedorRepository implements the ProveedorRepository interface
type MongoProveedorRepository struct {
	collection *mongo.Collection
}

// NewMongoProveedorRepository creates a new MongoDB proveedor repository
func NewMongoProveedorRepository(db *mongo.Database) repository.ProveedorRepository {
	return &MongoProveedorRepository{
		collection: db.Collection("proveedores"),
	}
}

func (r *MongoProveedorRepository) Save(ctx context.Context, proveedor *entity.Proveedor) error {
	if proveedor.ID == "" {
		proveedor.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, proveedor)
	return err
}

func (r *MongoProveedorRepository) FindByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	var proveedor entity.Proveedor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&proveedor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &proveedor, nil
}

func (r *MongoProveedorRepository) FindAll(ctx context.Context) ([]*entity.Proveedor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var proveedores []*entity.Proveedor
	if err := cursor.All(ctx, &proveedores); err != nil {
		return nil, err
	}

	return proveedores, nil
}

func (r *MongoProveedorRepository) Update(ctx context.Context, proveedor *entity.Proveedor) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": proveedor.ID}, proveedor)
	if err != nil {
		return fmt.Errorf("failed to update proveedor: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no proveedor found with id: %s", proveedor.ID)
	}
	return nil
}

func (r *MongoProveedorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no proveedor found with id: %s", id)
	}
	return nil
}

// MongoServicioRepository implements the ServicioRepository interface
type MongoServicioRepository struct {
	collection *mongo.Collection
}

// NewMongoServicioRepository creates a new MongoDB servicio repository
func NewMongoServicioRepository(db *mongo.Database) repository.ServicioRepository {
	collection := db.Collection("servicios")

	proveedorIndex := mongo.IndexModel{
		Keys: bson.M{"proveedorId": 1},
	}
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{proveedorIndex})

	return &MongoServicioRepository{
		collection: collection,
	}
}

func (r *MongoServicioRepository) Save(ctx context.Context, servicio *entity.Servicio) error {
	if servicio.ID == "" {
		servicio.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, servicio)
	return err
}

func (r *MongoServicioRepository) FindByID(ctx context.Context, id string) (*entity.Servicio, error) {
	var servicio entity.Servicio
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&servicio)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &servicio, nil
}

func (r *MongoServicioRepository) FindAll(ctx context.Context) ([]*entity.Servicio, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var servicios []*entity.Servicio
	if err := cursor.All(ctx, &servicios); err != nil {
		return nil, err
	}

	return servicios, nil
}

func (r *MongoServicioRepository) FindByProveedorID(ctx context.Context, proveedorID string) ([]*entity.Servicio, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"proveedorId": proveedorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var servicios []*entity.Servicio
	if err := cursor.All(ctx, &servicios); err != nil {
		return nil, err
	}

	return servicios, nil
}

func (r *MongoServicioRepository) Update(ctx context.Context, servicio *entity.Servicio) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": servicio.ID}, servicio)
	if err != nil {
		return fmt.Errorf("failed to update servicio: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no servicio found with id: %s", servicio.ID)
	}
	return nil
}

func (r *MongoServicioRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no servicio found with id: %s", id)
	}
	return nil
}

// MongoPaqueteRepository implements the PaqueteRepository interface
type MongoPaqueteRepository struct {
	collection *mongo.Collection
	links      *mongo.Collection
}

// NewMongoPaqueteRepository creates a new MongoDB tour package repository
func NewMongoPaqueteRepository(db *mongo.Database) repository.PaqueteRepository {
	links := db.Collection("paqueteServicios")

	paqueteIndex := mongo.IndexModel{
		Keys: bson.M{"paqueteId": 1},
	}
	links.Indexes().CreateMany(context.Background(), []mongo.IndexModel{paqueteIndex})

	return &MongoPaqueteRepository{
		collection: db.Collection("paquetesTuristicos"),
		links:      links,
	}
}

func (r *MongoPaqueteRepository) Save(ctx context.Context, paquete *entity.PaqueteTuristico) error {
	if paquete.ID == "" {
		paquete.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, paquete)
	return err
}

func (r *MongoPaqueteRepository) FindByID(ctx context.Context, id string) (*entity.PaqueteTuristico, error) {
	var paquete entity.PaqueteTuristico
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&paquete)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &paquete, nil
}

func (r *MongoPaqueteRepository) FindAll(ctx context.Context) ([]*entity.PaqueteTuristico, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var paquetes []*entity.PaqueteTuristico
	if err := cursor.All(ctx, &paquetes); err != nil {
		return nil, err
	}

	return paquetes, nil
}

func (r *MongoPaqueteRepository) Update(ctx context.Context, paquete *entity.PaqueteTuristico) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": paquete.ID}, paquete)
	if err != nil {
		return fmt.Errorf("failed to update paquete: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no paquete found with id: %s", paquete.ID)
	}
	return nil
}

func (r *MongoPaqueteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no paquete found with id: %s", id)
	}
	return nil
}

func (r *MongoPaqueteRepository) AddServicio(ctx context.Context, link *entity.PaqueteServicio) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}

	_, err := r.links.InsertOne(ctx, link)
	return err
}

func (r *MongoPaqueteRepository) FindServicios(ctx context.Context, paqueteID string) ([]*entity.PaqueteServicio, error) {
	cursor, err := r.links.Find(ctx, bson.M{"paqueteId": paqueteID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []*entity.PaqueteServicio
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}

	return links, nil
}

func (r *MongoPaqueteRepository) RemoveServicios(ctx context.Context, paqueteID string) error {
	_, err := r.links.DeleteMany(ctx, bson.M{"paqueteId": paqueteID})
	return err
}
