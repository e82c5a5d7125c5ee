package entity

import "encoding/json"

// RolCliente rol por defecto de todo usuario registrado desde la app.
const RolCliente = "CLIENTE"

// User usuario de la plataforma tal como lo entrega el backend.
// Password solo viaja en registro y actualización de perfil, nunca en lecturas.
type User struct {
	ID       int      `json:"id,omitempty"`
	Email    string   `json:"email"`
	Nombre   string   `json:"nombre"`
	Apellido string   `json:"apellido"`
	Roles    []string `json:"roles,omitempty"`
	Password string   `json:"password,omitempty"`
}

// UnmarshalJSON aplica el rol CLIENTE cuando el backend omite roles.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Roles) == 0 {
		aux.Roles = []string{RolCliente}
	}
	*u = User(aux)
	return nil
}

// NombreCompleto nombre y apellido para mostrar en pantalla.
func (u User) NombreCompleto() string {
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}

// LoginRequest credenciales para POST /auth-simple/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta de login: usuario autenticado y mensaje del servidor.
type LoginResponse struct {
	Usuario User   `json:"usuario"`
	Mensaje string `json:"mensaje"`
}
