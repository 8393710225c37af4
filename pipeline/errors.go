package pipeline

import "fmt"

// BatchError: o body já verificado não é um batch {"result": [...]} válido.
// Absorvido pelo handler do estágio receive (logado, sem retry).
type BatchError struct {
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("malformed batch: %v", e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// IngestError: um item de mensagem não pôde ser armazenado (JSON inválido ou
// campo obrigatório ausente). Absorvido pelo handler do estágio parse.
type IngestError struct {
	Reason string
	Err    error
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ingest: %s: %v", e.Reason, e.Err)
	}
	return "ingest: " + e.Reason
}

func (e *IngestError) Unwrap() error { return e.Err }
