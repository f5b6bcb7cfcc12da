package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (l nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return l
}

func TestPredict(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(entity.PredictResponse{
			Success:                 true,
			VentaID:                 "v1",
			ProbabilidadCancelacion: 0.77,
			Recomendacion:           entity.RecomendacionEnviarRecordatorio,
			FactoresRiesgo:          []string{"temporada alta"},
		})
	}))
	defer server.Close()

	repo := NewHTTPPredictorRepository(server.URL, nopLogger{})

	resp, err := repo.Predict(context.Background(), &entity.PredictRequest{
		VentaID:         "v1",
		ClienteID:       "c1",
		MontoTotal:      1500,
		EsTemporadaAlta: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "/predict", gotPath)
	assert.Equal(t, "v1", gotBody["ventaId"])
	assert.Equal(t, float64(1), gotBody["esTemporadaAlta"])
	assert.Equal(t, 0.77, resp.ProbabilidadCancelacion)
	assert.Equal(t, entity.RecomendacionEnviarRecordatorio, resp.Recomendacion)
}

func TestPredictFull_SnakeCaseContract(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(entity.PredictResponse{Success: true, VentaID: "v1"})
	}))
	defer server.Close()

	repo := NewHTTPPredictorRepository(server.URL, nopLogger{})

	_, err := repo.PredictFull(context.Background(), &entity.PredictRequestFull{
		VentaID:           "v1",
		EmailCliente:      "ana@example.com",
		FechaVenta:        time.Now(),
		MetodoPagoTarjeta: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "v1", gotBody["venta_id"])
	assert.Equal(t, "ana@example.com", gotBody["email_cliente"])
	assert.Equal(t, float64(1), gotBody["metodo_pago_tarjeta"])
	assert.NotContains(t, gotBody, "ventaId")
}

func TestPredict_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "model not loaded"})
	}))
	defer server.Close()

	repo := NewHTTPPredictorRepository(server.URL, nopLogger{})

	_, err := repo.Predict(context.Background(), &entity.PredictRequest{VentaID: "v1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestPredict_ServiceDown(t *testing.T) {
	repo := NewHTTPPredictorRepository("http://127.0.0.1:1", nopLogger{})

	_, err := repo.Predict(context.Background(), &entity.PredictRequest{VentaID: "v1"})
	assert.Error(t, err)
}
