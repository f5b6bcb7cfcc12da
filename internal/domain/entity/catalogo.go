package entity

// Proveedor is a service provider (hotel chain, airline, tour operator).
type Proveedor struct {
	ID               string `bson:"_id,omitempty" json:"id"`
	NombreEmpresa    string `bson:"nombreEmpresa" json:"nombreEmpresa"`
	TipoServicio     string `bson:"tipoServicio" json:"tipoServicio"`
	ContactoNombre   string `bson:"contactoNombre,omitempty" json:"contactoNombre,omitempty"`
	ContactoEmail    string `bson:"contactoEmail,omitempty" json:"contactoEmail,omitempty"`
	ContactoTelefono string `bson:"contactoTelefono,omitempty" json:"contactoTelefono,omitempty"`
}

// Servicio is a sellable unit offered by a provider.
type Servicio struct {
	ID             string  `bson:"_id,omitempty" json:"id"`
	ProveedorID    string  `bson:"proveedorId,omitempty" json:"proveedorId,omitempty"`
	TipoServicio   string  `bson:"tipoServicio" json:"tipoServicio"`
	NombreServicio string  `bson:"nombreServicio" json:"nombreServicio"`
	Descripcion    string  `bson:"descripcion,omitempty" json:"descripcion,omitempty"`
	DestinoCiudad  string  `bson:"destinoCiudad,omitempty" json:"destinoCiudad,omitempty"`
	DestinoPais    string  `bson:"destinoPais,omitempty" json:"destinoPais,omitempty"`
	PrecioCosto    float64 `bson:"precioCosto" json:"precioCosto"`
	PrecioVenta    float64 `bson:"precioVenta" json:"precioVenta"`
	IsAvailable    bool    `bson:"isAvailable" json:"isAvailable"`
}

// PaqueteTuristico bundles services into a tour package with a main
// destination and a duration in days.
type PaqueteTuristico struct {
	ID               string  `bson:"_id,omitempty" json:"id"`
	NombrePaquete    string  `bson:"nombrePaquete" json:"nombrePaquete"`
	Descripcion      string  `bson:"descripcion,omitempty" json:"descripcion,omitempty"`
	DestinoPrincipal string  `bson:"destinoPrincipal" json:"destinoPrincipal"`
	DuracionDias     int     `bson:"duracionDias" json:"duracionDias"`
	PrecioTotalVenta float64 `bson:"precioTotalVenta" json:"precioTotalVenta"`
}

// PaqueteServicio links a service into a tour package.
type PaqueteServicio struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	PaqueteID  string `bson:"paqueteId" json:"paqueteId"`
	ServicioID string `bson:"servicioId" json:"servicioId"`
}
