package dto

// TokenRequest claims del caller para emitir un token de identidad.
// La identidad llega ya autenticada por la capa externa; aquí solo se firma.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// TokenResponse token de identidad emitido.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminStatusResponse respuesta de GET /users/admin/:email.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
