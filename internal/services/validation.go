package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	customerrors "github.com/axellelanca/pokedex/internal/errors"
	"github.com/axellelanca/pokedex/internal/models"
)

// validate is shared by every normalization call; the rules live as tags on
// recordInput.
var validate = validator.New()

// recordInput is the normalized shape the validator runs against. Height
// and weight are set to -1 when the raw value cannot be coerced to an
// integer, which fails the gte rule the same way a negative value does.
type recordInput struct {
	Name   string `validate:"required"`
	Height int    `validate:"gte=0"`
	Weight int    `validate:"gte=0"`
	Image  string `validate:"required"`
}

// normalizePayload coerces and validates a write payload. On success the
// returned input carries the exact values to persist; on failure every
// field problem is reported together in a *ValidationError, never just the
// first one.
func normalizePayload(p models.PokemonPayload) (recordInput, error) {
	in := recordInput{Name: p.Name, Image: p.Image, Height: -1, Weight: -1}
	if h, ok := coerceInt(p.Height); ok {
		in.Height = h
	}
	if w, ok := coerceInt(p.Weight); ok {
		in.Weight = w
	}

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return recordInput{}, &customerrors.ValidationError{Messages: validationMessages(fieldErrs)}
		}
		return recordInput{}, err
	}
	return in, nil
}

// validationMessages renders one message per failing field, in struct field
// order (name, height, weight, image).
func validationMessages(fieldErrs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		field := strings.ToLower(e.Field())
		switch e.ActualTag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s should not be empty", field))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be a non-negative integer", field))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return messages
}

// coerceInt converts a raw payload value into an integer. JSON decoding
// hands numbers over as float64; numeric strings count too, so "7" is as
// good as 7. Fractional, out-of-range and non-numeric values do not coerce.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return wholeInt(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return wholeInt(f)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return wholeInt(f)
	case int:
		return n, true
	default:
		return 0, false
	}
}

// wholeInt accepts only integral values that fit a 32-bit range, which is
// plenty for heights and weights.
func wholeInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
