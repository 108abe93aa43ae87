// Package prediction serves batch predictions over the classifier.
package prediction

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Alijeyrad/cardioai/internal/classifier"
)

const (
	meterName = "github.com/Alijeyrad/cardioai/internal/service/prediction"

	MinFeatures = 107
	MaxFeatures = 108
)

// Request is the body of a predict call. Cells are pointers so a JSON null
// is rejected instead of decoding to 0.
type Request struct {
	Data [][]*float64 `json:"data" validate:"required,min=1,dive,min=107,max=108,dive,required"`
}

// Matrix returns the batch as plain values. Only valid after validation.
func (r Request) Matrix() [][]float64 {
	x := make([][]float64, len(r.Data))
	for i, row := range r.Data {
		x[i] = make([]float64, len(row))
		for j, v := range row {
			if v != nil {
				x[i][j] = *v
			}
		}
	}
	return x
}

type Service interface {
	Predict(ctx context.Context, req Request) (*classifier.Prediction, error)
}

type predictionService struct {
	clf      classifier.Classifier
	validate *validator.Validate
	batches  metric.Int64Counter
	vectors  metric.Int64Counter
}

func New(clf classifier.Classifier) Service {
	meter := otel.Meter(meterName)
	batches, _ := meter.Int64Counter(
		"prediction_batches_total",
		metric.WithDescription("Prediction batches served"),
		metric.WithUnit("{batch}"),
	)
	vectors, _ := meter.Int64Counter(
		"prediction_vectors_total",
		metric.WithDescription("Feature vectors scored"),
		metric.WithUnit("{vector}"),
	)

	return &predictionService{
		clf:      clf,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		batches:  batches,
		vectors:  vectors,
	}
}

// Predict rejects malformed batches before the model sees them.
func (s *predictionService) Predict(ctx context.Context, req Request) (*classifier.Prediction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	x := req.Matrix()
	pred, err := classifier.Evaluate(ctx, s.clf, x)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.batches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	if err != nil {
		return nil, err
	}
	s.vectors.Add(ctx, int64(len(x)))

	return pred, nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		loc := location(fe.Field())
		out.Details = append(out.Details, FieldError{
			Loc:  loc,
			Msg:  message(fe, loc),
			Type: errorType(fe, loc),
		})
	}
	return out
}

// location turns "Data", "Data[3]" or "Data[3][5]" into
// ["body", "data"(, 3(, 5))].
func location(field string) []any {
	loc := []any{"body", "data"}
	for {
		open := strings.IndexByte(field, '[')
		if open < 0 {
			return loc
		}
		end := strings.IndexByte(field[open:], ']')
		if end < 0 {
			return loc
		}
		idx, err := strconv.Atoi(field[open+1 : open+end])
		if err != nil {
			return loc
		}
		loc = append(loc, idx)
		field = field[open+end+1:]
	}
}

// isCell reports whether loc points at a single feature value.
func isCell(loc []any) bool { return len(loc) == 4 }

func message(fe validator.FieldError, loc []any) string {
	switch fe.Tag() {
	case "required":
		if isCell(loc) {
			return "value is not a valid float"
		}
		return "field required"
	case "min":
		return "ensure this value has at least " + fe.Param() + " items"
	case "max":
		return "ensure this value has at most " + fe.Param() + " items"
	default:
		return fe.Error()
	}
}

func errorType(fe validator.FieldError, loc []any) string {
	switch fe.Tag() {
	case "required":
		if isCell(loc) {
			return "type_error.float"
		}
		return "value_error.missing"
	case "min":
		return "value_error.list.min_items"
	case "max":
		return "value_error.list.max_items"
	default:
		return "value_error." + fe.Tag()
	}
}
