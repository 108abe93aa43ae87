package patient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Alijeyrad/cardioai/internal/events"
	"github.com/Alijeyrad/cardioai/internal/fields"
	"github.com/Alijeyrad/cardioai/internal/registry"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AddResult struct {
	Patients []registry.Name `json:"patients"`
	Warnings []string        `json:"warnings,omitempty"`
}

type ExportResult struct {
	File string `json:"file"`
	Rows int    `json:"rows"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Fields(ctx context.Context) []fields.Field
	Add(ctx context.Context, submission map[string]any) (*AddResult, error)
	List(ctx context.Context) []registry.Name
	Export(ctx context.Context) (*ExportResult, error)
	WriteSpreadsheet(ctx context.Context, w io.Writer) error
}

type patientService struct {
	reg       *registry.Registry
	events    *events.Publisher
	exportDir string
	now       func() time.Time
}

func New(reg *registry.Registry, pub *events.Publisher, exportDir string, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &patientService{reg: reg, events: pub, exportDir: exportDir, now: now}
}

func (s *patientService) Fields(_ context.Context) []fields.Field {
	return s.reg.Fields().Fields()
}

func (s *patientService) Add(_ context.Context, submission map[string]any) (*AddResult, error) {
	if submission == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidSubmission)
	}

	_, warnings := s.reg.Add(submission)
	rows := s.reg.Len()
	s.events.PatientAdded(rows, s.reg.Fields().Len(), s.now())

	slog.Debug("patient added", "rows", rows, "warnings", len(warnings))

	return &AddResult{Patients: s.reg.Names(), Warnings: warnings}, nil
}

func (s *patientService) List(_ context.Context) []registry.Name {
	return s.reg.Names()
}

func (s *patientService) Export(_ context.Context) (*ExportResult, error) {
	rows := s.reg.Len()
	path, err := s.reg.Export(s.exportDir, s.now())
	if err != nil {
		if errors.Is(err, registry.ErrEmpty) {
			return nil, ErrNoPatients
		}
		return nil, err
	}

	slog.Info("registry exported", "file", path, "rows", rows)
	s.events.ExportCreated(path, rows, s.now())

	return &ExportResult{File: path, Rows: rows}, nil
}

func (s *patientService) WriteSpreadsheet(_ context.Context, w io.Writer) error {
	if err := s.reg.WriteSpreadsheet(w); err != nil {
		if errors.Is(err, registry.ErrEmpty) {
			return ErrNoPatients
		}
		return err
	}
	return nil
}
