package entity

// Customer representa un cliente al que se le factura.
// El panel no lo muta: solo lo lista para el select del formulario de facturas.
type Customer struct {
	ID    string
	Name  string
	Email string
}
