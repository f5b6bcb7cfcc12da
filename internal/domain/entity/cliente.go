package entity

import "time"

// Cliente is a customer profile linked to a Usuario account.
type Cliente struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UsuarioID       string    `bson:"usuarioId" json:"usuarioId"`
	Direccion       string    `bson:"direccion" json:"direccion"`
	FechaNacimiento time.Time `bson:"fechaNacimiento,omitempty" json:"fechaNacimiento,omitempty"`
	NumeroPasaporte string    `bson:"numeroPasaporte" json:"numeroPasaporte"`
}

// Agente is a sales agent profile linked to a Usuario account.
type Agente struct {
	ID                string    `bson:"_id,omitempty" json:"id"`
	UsuarioID         string    `bson:"usuarioId" json:"usuarioId"`
	Puesto            string    `bson:"puesto" json:"puesto"`
	FechaContratacion time.Time `bson:"fechaContratacion,omitempty" json:"fechaContratacion,omitempty"`
}
