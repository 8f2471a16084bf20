package dto

// TokenRequest entrada para emitir tokens (email + password).
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse par de tokens emitido.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest entrada para refrescar el token de acceso.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}
