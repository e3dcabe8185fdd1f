package worker

// alerta_worker.go
// Processes low-stock alert jobs from QueueAlertaEstoque.
// Sends a restock email to the product's supplier (or the configured
// fallback address) and records a Mensagem for the in-app log.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/infra"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AlertaEstoquePayload is the job envelope sent to QueueAlertaEstoque.
type AlertaEstoquePayload struct {
	ProdutoID       string `json:"produto_id"`
	Produto         string `json:"produto"`
	Quantidade      int    `json:"quantidade"`
	Minimo          int    `json:"minimo"`
	FornecedorID    string `json:"fornecedor_id,omitempty"`
	Fornecedor      string `json:"fornecedor,omitempty"`
	FornecedorEmail string `json:"fornecedor_email,omitempty"`
}

type AlertaEstoqueWorker struct {
	mailer       *infra.Mailer
	mensagemRepo repository.MensagemRepository
	rdb          *redis.Client
	// destinoPadrao receives the alert when the supplier has no email.
	destinoPadrao string
}

func NewAlertaEstoqueWorker(mailer *infra.Mailer, mensagemRepo repository.MensagemRepository, rdb *redis.Client, destinoPadrao string) *AlertaEstoqueWorker {
	return &AlertaEstoqueWorker{
		mailer:        mailer,
		mensagemRepo:  mensagemRepo,
		rdb:           rdb,
		destinoPadrao: destinoPadrao,
	}
}

// Process handles a single alert job:
//  1. Parse AlertaEstoquePayload from the job envelope
//  2. Send the restock email with exponential backoff (max 3 attempts)
//  3. Record a Mensagem for the in-app notification log
//
// Jobs that exhaust the retries go to the dead letter queue.
func (w *AlertaEstoqueWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AlertaEstoquePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}

	to := payload.FornecedorEmail
	if to == "" {
		to = w.destinoPadrao
	}

	conteudo := fmt.Sprintf(
		"Alerta de estoque baixo: %s com %d unidade(s) em estoque (mínimo %d).",
		payload.Produto, payload.Quantidade, payload.Minimo)

	if to != "" && w.mailer != nil {
		subject := fmt.Sprintf("Reposição de estoque — %s", payload.Produto)
		body := conteudo + "\nSolicitamos a reposição do produto."
		if payload.Fornecedor != "" {
			body = fmt.Sprintf("Prezado fornecedor %s,\n\n%s", payload.Fornecedor, body)
		}
		sendErr := withRetry(ctx, 3, func(attempt int) error {
			if err := w.mailer.SendAlerta(to, subject, body); err != nil {
				log.Warn().
					Err(err).
					Int("attempt", attempt+1).
					Str("produto_id", payload.ProdutoID).
					Msg("alerta_worker: email attempt failed, retrying")
				return err
			}
			return nil
		})
		if sendErr != nil {
			log.Error().Err(sendErr).Str("produto_id", payload.ProdutoID).Msg("alerta_worker: email failed after all retries")
			SendToDLQ(ctx, w.rdb, QueueAlertaEstoque, "alerta_estoque", raw, sendErr.Error(), 3)
			return
		}
		log.Info().Str("to", to).Str("produto_id", payload.ProdutoID).Msg("alerta_worker: alerta enviado")
	} else {
		log.Warn().Str("produto_id", payload.ProdutoID).Msg("alerta_worker: sem destinatário, registrando apenas a mensagem")
	}

	msg := &model.Mensagem{
		Conteudo:  conteudo,
		DataEnvio: time.Now().UTC(),
		Status:    model.MensagemLogSistema,
	}
	if pid, err := uuid.Parse(payload.ProdutoID); err == nil {
		msg.ProdutoID = &pid
	}
	if fid, err := uuid.Parse(payload.FornecedorID); err == nil {
		msg.FornecedorID = &fid
	}
	if err := w.mensagemRepo.Create(ctx, msg); err != nil {
		log.Error().Err(err).Str("produto_id", payload.ProdutoID).Msg("alerta_worker: failed to record mensagem")
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
