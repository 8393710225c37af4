package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ReplyComputer mapeia texto inbound para texto outbound. Implementações
// podem consultar fontes externas; erro de qualquer natureza é tratado pelo
// estágio generate, que o mapeia para o sentinel "" (resposta de stamp).
type ReplyComputer interface {
	Compute(ctx context.Context, text string) (string, error)
}

// EchoComputer devolve o próprio texto. Texto vazio continua vazio, o que
// downstream vira o stamp de fallback.
type EchoComputer struct{}

func (EchoComputer) Compute(_ context.Context, text string) (string, error) {
	return text, nil
}

// QuoteComputer trata o texto como um símbolo e busca a cotação num endpoint
// externo que responde {"symbol": "...", "price": "..."}.
type QuoteComputer struct {
	Endpoint   string
	HTTPClient *http.Client
}

func (q QuoteComputer) Compute(ctx context.Context, text string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(text))
	if symbol == "" || strings.ContainsAny(symbol, " \t\n") {
		return "", fmt.Errorf("not a symbol: %q", text)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		q.Endpoint+"?symbol="+url.QueryEscape(symbol), nil)
	if err != nil {
		return "", err
	}

	client := q.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("quote lookup: status=%d", resp.StatusCode)
	}

	var parsed struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.Price == "" {
		return "", fmt.Errorf("quote lookup: no price for %s", symbol)
	}
	return symbol + ": " + parsed.Price, nil
}

// NewReplyComputer seleciona a estratégia por configuração em vez de duplicar
// o orquestrador inteiro por variante.
func NewReplyComputer(mode, quoteEndpoint string) ReplyComputer {
	if strings.EqualFold(strings.TrimSpace(mode), "quote") {
		return QuoteComputer{Endpoint: quoteEndpoint}
	}
	return EchoComputer{}
}
