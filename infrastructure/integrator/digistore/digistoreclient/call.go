package digistoreclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tamanho máximo de resposta lido da API
const maxResponseSize = 32 << 20

// call executa uma chamada na API e decodifica o campo data em out.
// O timeout vale para a chamada inteira, incluindo a espera do rate limiter.
func (c *DigistoreClient) call(ctx context.Context, endpoint, method string, params url.Values, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		// Wait falha antes do prazo quando a espera não caberia no timeout
		if errors.Is(ctx.Err(), context.Canceled) {
			return domain.NewUpstreamError(domain.ErrUpstreamUnavailable, endpoint, err)
		}
		return domain.NewUpstreamError(domain.ErrUpstreamTimeout, endpoint, err)
	}

	// Construir a URL da requisição.
	endpointURL, err := url.Parse(c.baseURL + "/" + endpoint)
	if err != nil {
		return domain.NewUpstreamError(domain.ErrUpstreamUnavailable, endpoint, fmt.Errorf("erro ao analisar a URL base: %w", err))
	}

	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	if c.language != "" {
		query.Set("language", c.language)
	}
	endpointURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpointURL.String(), nil)
	if err != nil {
		return domain.NewUpstreamError(domain.ErrUpstreamUnavailable, endpoint, fmt.Errorf("erro ao criar a requisição: %w", err))
	}

	req.Header.Set("X-DS-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(ctx, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.NewUpstreamError(domain.ErrUpstreamUnavailable, endpoint, fmt.Errorf("requisição falhou com status: %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return classifyTransportError(ctx, endpoint, err)
	}

	var envelope digistoredomain.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.NewUpstreamError(domain.ErrUpstreamRejected, endpoint, fmt.Errorf("erro ao decodificar a resposta: %w", err))
	}

	if envelope.IsError() {
		message := envelope.Message
		if message == "" {
			message = "erro desconhecido"
		}
		return domain.NewUpstreamError(domain.ErrUpstreamRejected, endpoint, errors.New(message))
	}

	if envelope.Result != digistoredomain.ResultSuccess {
		return domain.NewUpstreamError(domain.ErrUpstreamRejected, endpoint, fmt.Errorf("campo result inesperado: %q", envelope.Result))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return domain.NewUpstreamError(domain.ErrUpstreamRejected, endpoint, errors.New("resposta sem o campo data"))
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return domain.NewUpstreamError(domain.ErrUpstreamRejected, endpoint, fmt.Errorf("formato inesperado em data: %w", err))
	}

	return nil
}

// classifyTransportError separa timeouts de falhas de rede
func classifyTransportError(ctx context.Context, endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewUpstreamError(domain.ErrUpstreamTimeout, endpoint, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewUpstreamError(domain.ErrUpstreamTimeout, endpoint, err)
	}

	return domain.NewUpstreamError(domain.ErrUpstreamUnavailable, endpoint, err)
}
