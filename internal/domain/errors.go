package domain

import (
	"errors"
	"fmt"
)

// Erros do fluxo de sincronização de vendas
var (
	// Credenciais ausentes; fatal, detectado na inicialização
	ErrConfiguration = errors.New("configuration error")

	// Erros da API externa de faturamento
	ErrUpstreamTimeout     = errors.New("upstream timeout")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamRejected    = errors.New("upstream rejected")

	// Falha de escrita no livro de faturamento ou no cache
	ErrPersistence = errors.New("persistence error")

	// Nenhum snapshot foi produzido ainda
	ErrNoSnapshot = errors.New("no snapshot available yet")

	// Período inválido na consulta por intervalo
	ErrInvalidRange = errors.New("invalid date range")
)

// UpstreamError é um erro da API externa com o endpoint envolvido
type UpstreamError struct {
	Kind     error  // Um dos erros ErrUpstream*
	Endpoint string // Endpoint chamado
	Err      error  // Causa original (opcional)
}

// Error implementa a interface error
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind.Error(), e.Endpoint, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Endpoint)
}

// Unwrap permite errors.Is tanto com o tipo do erro quanto com a causa
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NewUpstreamError cria um novo UpstreamError
func NewUpstreamError(kind error, endpoint string, err error) *UpstreamError {
	return &UpstreamError{
		Kind:     kind,
		Endpoint: endpoint,
		Err:      err,
	}
}

// IsUpstreamError informa se o erro veio da API externa
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamTimeout) ||
		errors.Is(err, ErrUpstreamUnavailable) ||
		errors.Is(err, ErrUpstreamRejected)
}
