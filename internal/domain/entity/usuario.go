package entity

// Usuario is an account holder. Clientes and agentes reference a Usuario for
// identity and contact data.
type Usuario struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
	Nombre   string `bson:"nombre" json:"nombre"`
	Apellido string `bson:"apellido" json:"apellido"`
	Telefono string `bson:"telefono,omitempty" json:"telefono,omitempty"`
	Sexo     string `bson:"sexo,omitempty" json:"sexo,omitempty"`

	// FcmToken is the device token for push notifications, empty until the
	// client app registers one.
	FcmToken string `bson:"fcmToken,omitempty" json:"-"`

	IsAdmin   bool `bson:"isAdmin" json:"isAdmin"`
	IsAgente  bool `bson:"isAgente" json:"isAgente"`
	IsCliente bool `bson:"isCliente" json:"isCliente"`
	IsActive  bool `bson:"isActive" json:"isActive"`
}

// NombreCompleto joins first and last name for display.
func (u *Usuario) NombreCompleto() string {
	return u.Nombre + " " + u.Apellido
}
