package features

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Transform maps one record value to a feature value. now is the projection
// time, used by date-derived features.
type Transform func(v any, now time.Time) (float64, error)

// Identity casts the value to float64.
func Identity() Transform {
	return func(v any, _ time.Time) (float64, error) {
		return toFloat(v)
	}
}

// AgeYears derives whole calendar years between a birth date and now.
func AgeYears() Transform {
	return func(v any, now time.Time) (float64, error) {
		if v == nil {
			return math.NaN(), ErrMissingValue
		}
		born, err := cast.ToTimeE(v)
		if err != nil {
			return math.NaN(), fmt.Errorf("%w: birth date %v", ErrNotNumeric, v)
		}
		if born.After(now) {
			return math.NaN(), fmt.Errorf("birth date %s is after %s", born.Format(time.DateOnly), now.Format(time.DateOnly))
		}
		return float64(yearsBetween(born, now)), nil
	}
}

// Recode replaces known categorical strings by their code. Anything else is
// passed through and cast like Identity.
func Recode(codes map[string]float64) Transform {
	return func(v any, _ time.Time) (float64, error) {
		if s, ok := v.(string); ok {
			if code, ok := codes[strings.TrimSpace(s)]; ok {
				return code, nil
			}
		}
		return toFloat(v)
	}
}

// Constant fills a feature the form does not collect.
func Constant(c float64) Transform {
	return func(any, time.Time) (float64, error) {
		return c, nil
	}
}

func toFloat(v any) (float64, error) {
	if v == nil {
		return math.NaN(), ErrMissingValue
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return math.NaN(), fmt.Errorf("%w: %v", ErrNotNumeric, v)
	}
	return f, nil
}

func yearsBetween(born, now time.Time) int {
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years
}
