package workers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"linerelay/config"
	"linerelay/models"
	"linerelay/queue"

	"github.com/jinzhu/gorm"
)

// Dispatcher entrega tasks pendentes fazendo POST form para os endpoints
// internos /tasks/*. Semântica at-least-once: claim otimista, retry com
// backoff em não-2xx, e requeue de claims órfãos de processos mortos.
type Dispatcher struct {
	db           *gorm.DB
	baseURL      string
	client       *http.Client
	interval     time.Duration
	maxAttempts  int
	claimTimeout time.Duration
}

func NewDispatcher(db *gorm.DB, cfg config.Configuration) *Dispatcher {
	return &Dispatcher{
		db:           db,
		baseURL:      strings.TrimRight(cfg.Dispatcher.BaseURL, "/"),
		client:       &http.Client{Timeout: 60 * time.Second},
		interval:     time.Duration(cfg.Dispatcher.PollMs) * time.Millisecond,
		maxAttempts:  cfg.Dispatcher.MaxAttempts,
		claimTimeout: time.Duration(cfg.Dispatcher.ClaimTimeoutS) * time.Second,
	}
}

// Start dispara o loop de entrega em background.
func (d *Dispatcher) Start() {
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		for range ticker.C {
			d.runOnce()
		}
	}()
}

func (d *Dispatcher) runOnce() {
	if err := queue.RequeueStale(d.db, d.claimTimeout); err != nil {
		log.Printf("dispatcher: requeue stale error: %v", err)
	}

	claimed, err := queue.ClaimDue(d.db, 50)
	if err != nil {
		log.Printf("dispatcher: claim error: %v", err)
		return
	}

	for _, t := range claimed {
		go d.deliver(t)
	}
}

func (d *Dispatcher) deliver(t models.Task) {
	params, err := queue.ParamsMap(t)
	if err != nil {
		// params ilegíveis nunca vão entregar; não adianta tentar de novo
		log.Printf("dispatcher: task %s has bad params: %v", t.PublicID, err)
		_ = queue.MarkFailed(d.db, t.ID, t.Attempts+1, "bad params: "+err.Error())
		return
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	if err := d.post(t.Path, form); err != nil {
		attempts := t.Attempts + 1
		if attempts >= d.maxAttempts {
			log.Printf("dispatcher: task %s (%s) failed permanently after %d attempts: %v",
				t.PublicID, t.Path, attempts, err)
			_ = queue.MarkFailed(d.db, t.ID, attempts, err.Error())
			return
		}
		delay := backoff(attempts)
		log.Printf("dispatcher: task %s (%s) attempt %d failed, retrying in %s: %v",
			t.PublicID, t.Path, attempts, delay, err)
		_ = queue.Reschedule(d.db, t.ID, attempts, delay, err.Error())
		return
	}

	if err := queue.MarkDone(d.db, t.ID); err != nil {
		log.Printf("dispatcher: mark done error for task %s: %v", t.PublicID, err)
	}
}

func (d *Dispatcher) post(path string, form url.Values) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		d.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("handler status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}

func backoff(attempts int) time.Duration {
	d := time.Second << uint(attempts-1)
	if d > 5*time.Minute {
		d = 5 * time.Minute
	}
	return d
}
