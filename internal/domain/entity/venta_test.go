package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstadoVenta(t *testing.T) {
	for _, valid := range []string{"Pendiente", "Confirmada", "Cancelada"} {
		estado, err := ParseEstadoVenta(valid)
		require.NoError(t, err)
		assert.Equal(t, EstadoVenta(valid), estado)
	}

	for _, invalid := range []string{"", "pendiente", "PENDIENTE", "EnProceso"} {
		_, err := ParseEstadoVenta(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestParseMetodoPago(t *testing.T) {
	for _, valid := range []string{"EFECTIVO", "TARJETA", "TRANSFERENCIA"} {
		metodo, err := ParseMetodoPago(valid)
		require.NoError(t, err)
		assert.Equal(t, MetodoPago(valid), metodo)
	}

	for _, invalid := range []string{"", "tarjeta", "Tarjeta", "CHEQUE"} {
		_, err := ParseMetodoPago(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestPaqueteRef(t *testing.T) {
	var zero PaqueteRef
	id, ok := zero.Ref()
	assert.False(t, ok)
	assert.Empty(t, id)

	ref := SomePaquete("p1")
	id, ok = ref.Ref()
	assert.True(t, ok)
	assert.Equal(t, "p1", id)
}

func TestVentaPaquete(t *testing.T) {
	sinPaquete := &Venta{ID: "v1"}
	_, ok := sinPaquete.Paquete().Ref()
	assert.False(t, ok)

	conPaquete := &Venta{ID: "v2", PaqueteID: "p1"}
	id, ok := conPaquete.Paquete().Ref()
	assert.True(t, ok)
	assert.Equal(t, "p1", id)
}
