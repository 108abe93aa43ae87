// Package forecast builds the dashboard's chart data from the latest patient
// record and the classifier.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Alijeyrad/cardioai/internal/classifier"
	"github.com/Alijeyrad/cardioai/internal/features"
	"github.com/Alijeyrad/cardioai/internal/registry"
)

const tracerName = "github.com/Alijeyrad/cardioai/internal/service/forecast"

type FatalOutcome struct {
	Outcome     PieChart  `json:"outcome"`
	Causes      BarChart  `json:"causes"`
	Label       int       `json:"label"`
	Probability []float64 `json:"probability"`
	Warnings    []string  `json:"warnings,omitempty"`
}

type Service interface {
	Complications(ctx context.Context) BarChart
	FatalOutcome(ctx context.Context) (*FatalOutcome, error)
}

type Params struct {
	Registry      *registry.Registry
	Table         *features.Table
	Classifier    classifier.Classifier
	ReferencePath string
	Now           func() time.Time
}

type forecastService struct {
	p      Params
	tracer trace.Tracer
}

func New(p Params) Service {
	if p.Now == nil {
		p.Now = time.Now
	}
	return &forecastService{p: p, tracer: otel.Tracer(tracerName)}
}

func (s *forecastService) Complications(_ context.Context) BarChart {
	return bar(ComplicationLabels, complicationSeries)
}

// FatalOutcome projects the latest record, scales it against the reference
// dataset and classifies it. Unmappable values do not fail the request; they
// are scaled to zero and listed in Warnings.
func (s *forecastService) FatalOutcome(ctx context.Context) (*FatalOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "forecast.FatalOutcome")
	defer span.End()

	rec, err := s.p.Registry.Latest()
	if err != nil {
		if errors.Is(err, registry.ErrEmpty) {
			return nil, ErrNoPatient
		}
		return nil, err
	}

	projected, err := s.p.Table.Project(rec, s.p.Now())
	if err != nil {
		return nil, fmt.Errorf("project record: %w", err)
	}

	ref, err := features.LoadReference(s.p.ReferencePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReference, err)
	}

	scaled, err := features.Normalize(projected, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReference, err)
	}
	for _, w := range scaled.Warnings {
		slog.WarnContext(ctx, "forecast: feature degraded", "detail", w)
	}

	pred, err := classifier.Evaluate(ctx, s.p.Classifier, [][]float64{scaled.Values})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("classify: %w", err)
	}

	label := pred.Labels[0]
	split := classifier.OutcomeSplit(label)
	span.SetAttributes(
		attribute.Int("forecast.label", label),
		attribute.Int("forecast.warnings", len(scaled.Warnings)),
	)

	return &FatalOutcome{
		Outcome: PieChart{
			Labels: append([]string(nil), OutcomeLabels...),
			Values: split[:],
		},
		Causes:      bar(CauseOfDeathLabels, causeOfDeathSeries),
		Label:       label,
		Probability: pred.Probability[0],
		Warnings:    scaled.Warnings,
	}, nil
}
