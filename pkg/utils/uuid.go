package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateRequestID gera o identificador de uma solicitação admitida no
// ledger: timestamp em milissegundos mais um sufixo aleatório
func GenerateRequestID(now time.Time) (string, error) {
	suffix, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("kw_%d_%s", now.UnixMilli(), suffix), nil
}
