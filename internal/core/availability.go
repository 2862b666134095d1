package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// StockUnknown describes a record whose quantity cell could not be read.
const StockUnknown = "Quantity unknown"

// CheckAvailability answers a requested quantity for each record, preserving
// order. It is a mapping, not a reduction: n records in, n results out.
//
// A record is available when its quantity is present and requested <= quantity.
// A record with a missing quantity is kept in the results and reported as
// unavailable. Total weight is weight per unit times requested, computed
// exactly; it is missing when the weight is missing.
//
// Returns ErrInvalidQuantity if requested is below 1.
func CheckAvailability(records []PipeRecord, requested int) ([]AvailabilityResult, error) {
	if requested < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidQuantity, requested)
	}

	req := decimal.NewFromInt(int64(requested))
	results := make([]AvailabilityResult, 0, len(records))

	for _, r := range records {
		res := AvailabilityResult{
			Record:            r,
			RequestedQuantity: requested,
		}

		switch {
		case !r.Quantity.Valid:
			res.StockDescription = StockUnknown
		case req.LessThanOrEqual(r.Quantity.Decimal):
			res.Available = true
			res.StockDescription = r.Quantity.Decimal.String()
		default:
			res.StockDescription = fmt.Sprintf("Only %s available", r.Quantity.Decimal.String())
		}

		if r.WeightKG.Valid {
			res.TotalWeight = decimal.NewNullDecimal(r.WeightKG.Decimal.Mul(req))
		}

		results = append(results, res)
	}

	return results, nil
}

// ParseQuantity reads a requested quantity from user input.
// Empty input defaults to 1, the smallest quantity a user can ask for.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidQuantity, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidQuantity, n)
	}
	return n, nil
}
