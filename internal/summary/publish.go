package summary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/resty.v1"
)

// Publisher delivers a rendered summary somewhere.
type Publisher interface {
	Publish(ctx context.Context, text string) error
}

// WriterPublisher writes the summary to an io.Writer (stdout for dry runs).
type WriterPublisher struct {
	W io.Writer
}

func (p WriterPublisher) Publish(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(p.W, text)
	return err
}

// WebhookPublisher POSTs {"text": ...} to a webhook URL.
type WebhookPublisher struct {
	url    string
	token  string
	client *resty.Client
}

// NewWebhookPublisher builds a publisher; token is sent as a bearer token
// when non-empty.
func NewWebhookPublisher(url, token string) *WebhookPublisher {
	cl := &http.Client{Timeout: 30 * time.Second}
	return &WebhookPublisher{url: url, token: token, client: resty.NewWithClient(cl)}
}

func (p *WebhookPublisher) Publish(ctx context.Context, text string) error {
	req := p.client.R()
	req.SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if p.token != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", p.token))
	}
	req.SetBody(map[string]string{"text": text})

	resp, err := req.Post(p.url)
	if err != nil {
		return fmt.Errorf("post summary: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("post summary: status code %d %s", resp.StatusCode(), resp.Body())
	}
	log.Info().Str("url", p.url).Int("status", resp.StatusCode()).Msg("summary published")
	return nil
}
