package provisioning

import "errors"

// Erros específicos para o contexto de provisionamento
var (
	// Erros de admissão
	ErrGenerateRequestID = errors.New("error generating request ID")
	ErrLedgerAppend      = errors.New("error appending request to ledger")

	// Erros de leitura
	ErrFetchRequests = errors.New("error fetching requests from ledger")
)
