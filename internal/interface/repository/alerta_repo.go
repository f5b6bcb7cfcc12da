// internal/interface/repository/alerta_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAlertaRepository implements the AlertaRepository interface
type MongoAlertaRepository struct {
	collection *mongo.Collection
}

// NewMongoAlertaRepository creates a new MongoDB cancellation-alert repository
func NewMongoAlertaRepository(db *mongo.Database) repository.AlertaRepository {
	collection := db.Collection("alertas_cancelacion")

	ctx := context.Background()

	// One alert per sale.
	ventaIndex := mongo.IndexModel{
		Keys:    bson.M{"ventaId": 1},
		Options: options.Index().SetUnique(true),
	}

	// Compound index backing the scheduler's pending scans.
	pendientesIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "recordatorioEnviado", Value: 1},
			{Key: "estadoVenta", Value: 1},
			{Key: "fechaVenta", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		ventaIndex,
		pendientesIndex,
	})

	return &MongoAlertaRepository{
		collection: collection,
	}
}

// Save inserts an alert, generating its id
func (r *MongoAlertaRepository) Save(ctx context.Context, alerta *entity.AlertaCancelacion) error {
	if alerta.ID == "" {
		alerta.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, alerta)
	return err
}

// FindByVentaID finds the alert for a sale, returning nil when absent
func (r *MongoAlertaRepository) FindByVentaID(ctx context.Context, ventaID string) (*entity.AlertaCancelacion, error) {
	var alerta entity.AlertaCancelacion
	err := r.collection.FindOne(ctx, bson.M{"ventaId": ventaID}).Decode(&alerta)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &alerta, nil
}

func pendientesFilter() bson.M {
	return bson.M{
		"recordatorioEnviado": false,
		"estadoVenta":         entity.EstadoPendiente,
	}
}

// FindPendientesEntre finds unreminded pending alerts with a travel date in
// [inicio, fin]
func (r *MongoAlertaRepository) FindPendientesEntre(ctx context.Context, inicio, fin time.Time) ([]*entity.AlertaCancelacion, error) {
	filter := pendientesFilter()
	filter["fechaVenta"] = bson.M{"$gte": inicio, "$lte": fin}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var alertas []*entity.AlertaCancelacion
	if err := cursor.All(ctx, &alertas); err != nil {
		return nil, err
	}

	return alertas, nil
}

// FindPendientes finds all unreminded pending alerts regardless of date
func (r *MongoAlertaRepository) FindPendientes(ctx context.Context) ([]*entity.AlertaCancelacion, error) {
	cursor, err := r.collection.Find(ctx, pendientesFilter())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var alertas []*entity.AlertaCancelacion
	if err := cursor.All(ctx, &alertas); err != nil {
		return nil, err
	}

	return alertas, nil
}

// CountPendientes counts unreminded pending alerts
func (r *MongoAlertaRepository) CountPendientes(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, pendientesFilter())
}

// MarcarRecordatorioEnviado flips the reminder-sent flag and stamps the send
// time
func (r *MongoAlertaRepository) MarcarRecordatorioEnviado(ctx context.Context, id string, enviadoAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"recordatorioEnviado":    true,
			"fechaEnvioRecordatorio": enviadoAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no alerta found with id: %s", id)
	}
	return nil
}
