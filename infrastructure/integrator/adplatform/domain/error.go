package domain

// ErrorResponse é o envelope de erro da API da plataforma de anúncios
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
