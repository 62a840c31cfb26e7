package domain

import "time"

// SyncOutcome indica o desfecho de um ciclo de reconciliação
type SyncOutcome string

const (
	// Dados novos aceitos, possivelmente com fallbacks por campo
	SyncOutcomeUpdated SyncOutcome = "updated"
	// Cache anterior mantido; apenas dailyRevenue e fetchedAt atualizados
	SyncOutcomePreserved SyncOutcome = "preserved"
	// O ciclo ainda está rodando; o chamador recebeu o cache atual
	SyncOutcomePending SyncOutcome = "pending"
)

const (
	SyncMessageUpdated   = "Dados sincronizados com sucesso"
	SyncMessagePreserved = "API parcialmente indisponível: cache mantido com fallback do histórico"
	SyncMessagePending   = "Sincronização ainda em andamento: servindo dados do cache"
)

// SyncResult é o resultado de um ciclo de sincronização
type SyncResult struct {
	RunID    string         `json:"runId"`
	Outcome  SyncOutcome    `json:"outcome"`
	Message  string         `json:"message"`
	Snapshot *SalesSnapshot `json:"data,omitempty"`
	Duration time.Duration  `json:"-"`
}

// Product é um produto cadastrado na plataforma, com o grupo em que o nome se encaixa
type Product struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Group *ProductGroup `json:"group"`
}
