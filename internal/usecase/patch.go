package usecase

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/housestock/backend/internal/domain"
)

// patchField maps a camelCase JSON key of an update body to its column
type patchField struct {
	key    string
	column string
	decode func(v gjson.Result) (interface{}, error)
}

// changesFromPatch turns a partial update body into column changes, in field order.
// Keys that are not listed are ignored.
func changesFromPatch(body []byte, fields []patchField) ([]domain.Change, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", domain.ErrInvalidRequest)
	}
	patch := gjson.ParseBytes(body)
	if !patch.IsObject() {
		return nil, fmt.Errorf("%w: body must be a JSON object", domain.ErrInvalidRequest)
	}

	var changes []domain.Change
	for _, f := range fields {
		v := patch.Get(gjson.Escape(f.key))
		if !v.Exists() {
			continue
		}
		value, err := f.decode(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %v", domain.ErrInvalidRequest, f.key, err)
		}
		changes = append(changes, domain.Change{Column: f.column, Value: value})
	}

	if len(changes) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}
	return changes, nil
}

func text(v gjson.Result) (interface{}, error) {
	switch v.Type {
	case gjson.String:
		return v.Str, nil
	case gjson.Null:
		return "", nil
	default:
		return nil, errors.New("must be a string")
	}
}

func requiredText(v gjson.Result) (interface{}, error) {
	if v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
		return nil, errors.New("must not be empty")
	}
	return v.Str, nil
}

func integer(v gjson.Result) (interface{}, error) {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return nil, errors.New("must be a whole number")
	}
	return int(v.Int()), nil
}

func nonNegativeInteger(v gjson.Result) (interface{}, error) {
	n, err := integer(v)
	if err != nil {
		return nil, err
	}
	if n.(int) < 0 {
		return nil, errors.New("must not be negative")
	}
	return n, nil
}

func positiveInteger(v gjson.Result) (interface{}, error) {
	n, err := integer(v)
	if err != nil {
		return nil, err
	}
	if n.(int) <= 0 {
		return nil, errors.New("must be positive")
	}
	return n, nil
}

// optionalInteger stores NULL for a JSON null
func optionalInteger(v gjson.Result) (interface{}, error) {
	if v.Type == gjson.Null {
		return nil, nil
	}
	return integer(v)
}

func price(v gjson.Result) (interface{}, error) {
	switch v.Type {
	case gjson.Null:
		return decimal.Zero, nil
	case gjson.Number:
		if v.Num < 0 {
			return nil, errors.New("must not be negative")
		}
		return decimal.NewFromFloat(v.Num).Round(2), nil
	default:
		return nil, errors.New("must be a number")
	}
}

func boolean(v gjson.Result) (interface{}, error) {
	switch v.Type {
	case gjson.True:
		return true, nil
	case gjson.False, gjson.Null:
		return false, nil
	default:
		return nil, errors.New("must be true or false")
	}
}

func wineType(v gjson.Result) (interface{}, error) {
	t := domain.WineType(v.Str)
	if v.Type != gjson.String || !t.Valid() {
		return nil, fmt.Errorf("must be one of %v", domain.WineTypes)
	}
	return string(t), nil
}
