package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // mensagem que pode ser exibida ao usuário
	Fields    map[string]string // erros de validação por campo (opcional)
	Err       error             // erro interno (para log)
}
