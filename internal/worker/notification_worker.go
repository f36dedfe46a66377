package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/caffeinepub/supply-chain-management-app/internal/infra"
)

const JobTypeApprovalNotification = "approval_notification"

// ApprovalNotificationPayload describes a requisition lifecycle event that
// should be emailed to the procurement inbox.
type ApprovalNotificationPayload struct {
	RequisitionID string `json:"requisition_id"`
	Action        string `json:"action"`
	ActorName     string `json:"actor_name"`
	Comments      string `json:"comments,omitempty"`
	Total         string `json:"total"`
}

// NotificationWorker sends requisition lifecycle emails. Every SMTP call
// goes through the circuit breaker so a dead mail server does not burn
// worker time on guaranteed failures.
type NotificationWorker struct {
	mailer      *infra.Mailer
	cb          *infra.CircuitBreaker
	notifyEmail string
}

func NewNotificationWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, notifyEmail string) *NotificationWorker {
	return &NotificationWorker{mailer: mailer, cb: cb, notifyEmail: notifyEmail}
}

func (w *NotificationWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ApprovalNotificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payload will never succeed, do not retry.
		log.Error().Err(err).Msg("malformed approval notification payload")
		return nil
	}
	if w.notifyEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("Requisition %s %s", payload.RequisitionID, payload.Action)
	body := fmt.Sprintf(
		"Requisition %s was %s by %s.\nTotal: %s",
		payload.RequisitionID, payload.Action, payload.ActorName, payload.Total,
	)
	if payload.Comments != "" {
		body += fmt.Sprintf("\nComments: %s", payload.Comments)
	}

	err := w.cb.Execute(func() error {
		return w.mailer.Send(w.notifyEmail, subject, body)
	})
	if err != nil {
		log.Warn().
			Str("requisition_id", payload.RequisitionID).
			Err(err).
			Msg("approval notification delivery failed")
		return err
	}

	log.Info().
		Str("requisition_id", payload.RequisitionID).
		Str("action", payload.Action).
		Msg("approval notification sent")
	return nil
}
