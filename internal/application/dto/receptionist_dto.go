package dto

import "encoding/json"

// ReceptionistRequest entrada para crear o actualizar un recepcionista.
// El id enviado por el cliente se ignora.
type ReceptionistRequest struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Password string `json:"password"`
}

// ReceptionistResponse salida de un recepcionista (incluye password).
type ReceptionistResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Password string `json:"password"`
}

// ReceptionistLoginRequest entrada de login: identifier puede ser el id numérico o el number.
type ReceptionistLoginRequest struct {
	Identifier LoginIdentifier `json:"identifier" swaggertype:"string"`
	Password   string          `json:"password"`
}

// LoginIdentifier acepta el identifier como string JSON o como número JSON (1 equivale a "1").
type LoginIdentifier string

// UnmarshalJSON normaliza un número JSON a su texto.
func (i *LoginIdentifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = LoginIdentifier(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = LoginIdentifier(n.String())
	return nil
}

// ReceptionistLoginResponse salida de login exitoso.
type ReceptionistLoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// MessageResponse cuerpo con solo mensaje (login fallido).
type MessageResponse struct {
	Message string `json:"message"`
}
