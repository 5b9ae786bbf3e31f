package entity

// Receptionist representa al personal de recepción de la clínica.
// Password se guarda y compara en texto plano.
type Receptionist struct {
	ID       int
	Name     string
	Number   string // número de teléfono o gafete, clave de negocio
	Password string
}
