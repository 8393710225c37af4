package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"linerelay/models"
)

// Valores fixos definidos pela LINE para a trial bot API.
const (
	lineToChannel = "1383378250"
	lineEventType = "138311608800106203"
)

// DeliveryError indica falha na chamada de envio (não-2xx). Falha de
// transporte puro chega como o erro original do http.Client.
type DeliveryError struct {
	Status int
	Body   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("line api error: status=%d body=%s", e.Status, e.Body)
}

// LineClient envia mensagens outbound. As credenciais vêm do SettingsStore
// no momento da chamada (ver models.LoadChannelSettings) — nada é cacheado.
type LineClient struct {
	Endpoint   string
	Settings   models.ChannelSettings
	HTTPClient *http.Client
}

func NewLineClient(endpoint string, settings models.ChannelSettings) LineClient {
	return LineClient{
		Endpoint:   endpoint,
		Settings:   settings,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// stampContent é a resposta fallback para mensagens sem texto (stickers,
// imagens): um sticker fixo de "positivo".
func stampContent(to string) map[string]any {
	return map[string]any{
		"to":        []string{to},
		"toChannel": lineToChannel,
		"eventType": lineEventType,
		"content": map[string]any{
			"contentType": 8,
			"toType":      1,
			"contentMetadata": map[string]any{
				"STKPKGID":     "1",
				"STKTXT":       "[ビシッ]",
				"AT_RECV_MODE": "2",
				"STKVER":       "100",
				"STKID":        "13",
			},
		},
	}
}

func textContent(to, output string) map[string]any {
	return map[string]any{
		"to":        []string{to},
		"toChannel": lineToChannel,
		"eventType": lineEventType,
		"content": map[string]any{
			"contentType": 1,
			"toType":      1,
			"text":        output,
		},
	}
}

// Send entrega output para to. Output vazio é o sentinel "sem resposta
// textual" e vira o payload de stamp — nunca um text payload vazio.
func (c LineClient) Send(ctx context.Context, to, output string) error {
	data := stampContent(to)
	if output != "" {
		data = textContent(to, output)
	}

	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/v1/events", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("X-Line-ChannelID", c.Settings.ChannelID)
	req.Header.Set("X-Line-ChannelSecret", c.Settings.ChannelSecret)
	req.Header.Set("X-Line-Trusted-User-With-ACL", c.Settings.MID)
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &DeliveryError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}
