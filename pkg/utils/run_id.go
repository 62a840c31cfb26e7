package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Sem 0/O e 1/l/I para facilitar a leitura nos logs
const runIDAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const runIDSize = 8

// NewRunID gera o id curto que identifica uma execução da sincronização nos logs
func NewRunID() string {
	id, err := gonanoid.Generate(runIDAlphabet, runIDSize)
	if err != nil {
		return "unknown"
	}
	return id
}
