package digistoredomain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Envelope representa a estrutura de resposta da API da Digistore24
type Envelope struct {
	APIVersion string          `json:"api_version,omitempty"`
	Result     string          `json:"result"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data"`
}

// IsError verifica se a API sinalizou erro dentro de uma resposta 200
func (e *Envelope) IsError() bool {
	return e.Result == ResultError
}

// Money é um valor monetário que chega como string decimal ("123.45").
// String vazia e null são tratados como zero.
type Money struct {
	decimal.Decimal
}

func (m *Money) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" || string(trimmed) == `""` {
		m.Decimal = decimal.Zero
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("valor monetário inválido %s: %w", string(trimmed), err)
	}
	m.Decimal = d
	return nil
}

// Count é um inteiro que a API às vezes envia como string ("42")
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" || string(trimmed) == `""` {
		*c = 0
		return nil
	}

	raw := string(trimmed)
	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("contador inválido %s: %w", raw, err)
		}
		raw = unquoted
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("contador inválido %s: %w", raw, err)
	}
	*c = Count(value)
	return nil
}

// ID é um identificador que pode chegar como número ou como string
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*id = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("identificador inválido %s: %w", string(trimmed), err)
	}
	*id = ID(n.String())
	return nil
}
