package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
)

func newTestCalculator(ventas *fakeVentaRepo, paquetes *fakePaqueteRepo) (*FeatureCalculator, *fakeClienteRepo, *fakeUsuarioRepo) {
	clientes := newFakeClienteRepo()
	usuarios := newFakeUsuarioRepo()
	return NewFeatureCalculator(ventas, paquetes, clientes, usuarios, nopLogger{}), clientes, usuarios
}

func TestEsTemporadaAlta(t *testing.T) {
	alta := []time.Month{time.July, time.August, time.December}
	for _, m := range alta {
		assert.True(t, esTemporadaAlta(time.Date(2026, m, 15, 0, 0, 0, 0, time.UTC)), "month %v", m)
	}

	baja := []time.Month{time.January, time.June, time.September, time.November}
	for _, m := range baja {
		assert.False(t, esTemporadaAlta(time.Date(2026, m, 15, 0, 0, 0, 0, time.UTC)), "month %v", m)
	}
}

func TestDiaSemanaReserva(t *testing.T) {
	// 2026-09-07 is a Monday.
	lunes := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, diaSemanaReserva(lunes.AddDate(0, 0, i)))
	}
}

func TestClasificarDestino(t *testing.T) {
	cases := []struct {
		destino string
		want    int
	}{
		{"Playa del Carmen", DestinoPlaya},
		{"CANCÚN", DestinoPlaya},
		{"Islas del Caribe", DestinoPlaya},
		{"Ciudad de México", DestinoCiudad},
		{"La Paz", DestinoCiudad},
		{"Santa Cruz de la Sierra", DestinoCiudad},
		{"Salar de Uyuni", DestinoAventura},
		{"", DestinoAventura},

		// Beach terms win over city terms.
		{"Costa de la ciudad", DestinoPlaya},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, clasificarDestino(tc.destino), "destino %q", tc.destino)
	}
}

func TestCalcularFeatures_SinPaquete(t *testing.T) {
	ventas := newFakeVentaRepo()
	calc, _, _ := newTestCalculator(ventas, newFakePaqueteRepo())

	venta := &entity.Venta{
		ID:         "v1",
		ClienteID:  "c1",
		FechaVenta: time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC), // Monday, July
		MontoTotal: 1500,
		MetodoPago: entity.MetodoTarjeta,
	}

	req := calc.CalcularFeatures(context.Background(), venta, "c1")

	assert.Equal(t, 0, req.TienePaquete)
	assert.Equal(t, 5, req.DuracionDias)
	assert.Equal(t, 2, req.DestinoCategoria)
	assert.Equal(t, 1, req.EsTemporadaAlta)
	assert.Equal(t, 0, req.DiaSemanaReserva)
	assert.Equal(t, 1, req.MetodoPagoTarjeta)
}

func TestCalcularFeatures_ConPaquete(t *testing.T) {
	ventas := newFakeVentaRepo()
	paquetes := newFakePaqueteRepo()
	paquetes.paquetes["p1"] = &entity.PaqueteTuristico{
		ID:               "p1",
		NombrePaquete:    "Caribe Total",
		DestinoPrincipal: "Playa Varadero",
		DuracionDias:     8,
	}
	calc, _, _ := newTestCalculator(ventas, paquetes)

	venta := &entity.Venta{
		ID:         "v1",
		ClienteID:  "c1",
		PaqueteID:  "p1",
		FechaVenta: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		MetodoPago: entity.MetodoEfectivo,
	}

	req := calc.CalcularFeatures(context.Background(), venta, "c1")

	assert.Equal(t, 1, req.TienePaquete)
	assert.Equal(t, 8, req.DuracionDias)
	assert.Equal(t, DestinoPlaya, req.DestinoCategoria)
	assert.Equal(t, 0, req.EsTemporadaAlta)
	assert.Equal(t, 0, req.MetodoPagoTarjeta)
}

func TestCalcularFeatures_PaqueteDesconocido(t *testing.T) {
	// A dangling package reference keeps tienePaquete=1 but falls back to
	// default duration and category.
	calc, _, _ := newTestCalculator(newFakeVentaRepo(), newFakePaqueteRepo())

	venta := &entity.Venta{
		ID:         "v1",
		ClienteID:  "c1",
		PaqueteID:  "missing",
		FechaVenta: time.Now(),
		MetodoPago: entity.MetodoEfectivo,
	}

	req := calc.CalcularFeatures(context.Background(), venta, "c1")

	assert.Equal(t, 1, req.TienePaquete)
	assert.Equal(t, 5, req.DuracionDias)
	assert.Equal(t, 2, req.DestinoCategoria)
}

func TestCalcularFeatures_HistorialVacio(t *testing.T) {
	calc, _, _ := newTestCalculator(newFakeVentaRepo(), newFakePaqueteRepo())

	venta := &entity.Venta{ID: "v1", ClienteID: "nuevo", FechaVenta: time.Now()}
	req := calc.CalcularFeatures(context.Background(), venta, "nuevo")

	assert.Equal(t, 0, req.TotalComprasPrevias)
	assert.Equal(t, 0, req.TotalCancelacionesPrevias)
	assert.Equal(t, 0.0, req.TasaCancelacionHistorica)
	assert.Equal(t, 0.0, req.MontoPromedioCompras)
}

func TestCalcularFeatures_HistorialCliente(t *testing.T) {
	ventas := newFakeVentaRepo()
	ventas.ventas["h1"] = &entity.Venta{ID: "h1", ClienteID: "c1", MontoTotal: 100, EstadoVenta: entity.EstadoConfirmada}
	ventas.ventas["h2"] = &entity.Venta{ID: "h2", ClienteID: "c1", MontoTotal: 200, EstadoVenta: entity.EstadoCancelada}
	ventas.ventas["h3"] = &entity.Venta{ID: "h3", ClienteID: "c1", MontoTotal: 300, EstadoVenta: entity.EstadoCancelada}
	ventas.ventas["otro"] = &entity.Venta{ID: "otro", ClienteID: "c2", MontoTotal: 999, EstadoVenta: entity.EstadoCancelada}

	calc, _, _ := newTestCalculator(ventas, newFakePaqueteRepo())

	venta := &entity.Venta{ID: "v1", ClienteID: "c1", FechaVenta: time.Now()}
	req := calc.CalcularFeatures(context.Background(), venta, "c1")

	assert.Equal(t, 3, req.TotalComprasPrevias)
	assert.Equal(t, 2, req.TotalCancelacionesPrevias)
	assert.InDelta(t, 2.0/3.0, req.TasaCancelacionHistorica, 1e-9)
	assert.InDelta(t, 200.0, req.MontoPromedioCompras, 1e-9)
}

func TestCalcularFeatures_HistorialError(t *testing.T) {
	ventas := newFakeVentaRepo()
	ventas.err = assert.AnError
	calc, _, _ := newTestCalculator(ventas, newFakePaqueteRepo())

	venta := &entity.Venta{ID: "v1", ClienteID: "c1", FechaVenta: time.Now()}
	req := calc.CalcularFeatures(context.Background(), venta, "c1")

	assert.Equal(t, 0, req.TotalComprasPrevias)
	assert.Equal(t, 0.0, req.TasaCancelacionHistorica)
}

func TestCalcularFeaturesCompletas_Denormaliza(t *testing.T) {
	ventas := newFakeVentaRepo()
	paquetes := newFakePaqueteRepo()
	paquetes.paquetes["p1"] = &entity.PaqueteTuristico{
		ID:               "p1",
		NombrePaquete:    "Uyuni Extremo",
		DestinoPrincipal: "Salar de Uyuni",
		DuracionDias:     3,
	}

	calc, clientes, usuarios := newTestCalculator(ventas, paquetes)
	usuarios.usuarios["u1"] = &entity.Usuario{ID: "u1", Email: "ana@example.com", Nombre: "Ana", Apellido: "Mamani"}
	clientes.clientes["c1"] = &entity.Cliente{ID: "c1", UsuarioID: "u1"}

	venta := &entity.Venta{
		ID:         "v1",
		ClienteID:  "c1",
		PaqueteID:  "p1",
		FechaVenta: time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		MontoTotal: 2500,
		MetodoPago: entity.MetodoTarjeta,
	}

	req := calc.CalcularFeaturesCompletas(context.Background(), venta, "c1")

	assert.Equal(t, "ana@example.com", req.EmailCliente)
	assert.Equal(t, "Ana Mamani", req.NombreCliente)
	assert.Equal(t, "Uyuni Extremo", req.NombrePaquete)
	assert.Equal(t, "Salar de Uyuni", req.Destino)
	assert.Equal(t, 3, req.DuracionDias)
	assert.Equal(t, DestinoAventura, req.DestinoCategoria)
	assert.Equal(t, 1, req.EsTemporadaAlta)
	assert.Equal(t, 1, req.MetodoPagoTarjeta)
}
