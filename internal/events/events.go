// Package events publishes registry activity on NATS.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Alijeyrad/cardioai/pkg/constants"
)

// PatientAdded is published after a record is appended.
type PatientAdded struct {
	ID      string    `json:"id"`
	Row     int       `json:"row"`
	Fields  int       `json:"fields"`
	AddedAt time.Time `json:"added_at"`
}

// ExportCreated is published after the registry is written to disk.
type ExportCreated struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher is a no-op when built without a connection.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.nc != nil
}

func (p *Publisher) PatientAdded(row, fields int, at time.Time) {
	p.publish(constants.SubjectPatientAdded, PatientAdded{
		ID:      uuid.NewString(),
		Row:     row,
		Fields:  fields,
		AddedAt: at,
	})
}

func (p *Publisher) ExportCreated(path string, rows int, at time.Time) {
	p.publish(constants.SubjectExportCreated, ExportCreated{
		ID:        uuid.NewString(),
		Path:      path,
		Rows:      rows,
		CreatedAt: at,
	})
}

// publish is fire-and-forget; failures are logged only.
func (p *Publisher) publish(subject string, payload any) {
	if !p.Enabled() {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("events: encode failed", "subject", subject, "err", err)
		return
	}
	if err := p.nc.Publish(subject, data); err != nil {
		slog.Warn("events: publish failed", "subject", subject, "err", err)
	}
}

// DecodeExportCreated parses an ExportCreated message body.
func DecodeExportCreated(data []byte) (ExportCreated, error) {
	var ev ExportCreated
	if err := json.Unmarshal(data, &ev); err != nil {
		return ExportCreated{}, fmt.Errorf("decode export event: %w", err)
	}
	if ev.Path == "" {
		return ExportCreated{}, fmt.Errorf("decode export event: empty path")
	}
	return ev, nil
}
