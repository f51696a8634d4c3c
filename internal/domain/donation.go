package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type DonationStatus string

const DonationPaid DonationStatus = "paid"

// MaxAmount bounds a single donation so project totals stay finite.
const MaxAmount = 1e12

// Donation represents a supporter contribution record.
type Donation struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Amount    float64        `json:"amount"`
	ProjectID *int64         `json:"project_id"`
	Status    DonationStatus `json:"status"`
	DonatedAt time.Time      `json:"donated_at"`
}

// ParseAmount accepts a JSON number or a numeric string in (0, MaxAmount].
func ParseAmount(raw any) (float64, error) {
	v, ok := toNumber(raw)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > MaxAmount {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, raw)
	}
	return v, nil
}

// ParseProjectRef reads an optional project id. Absent, empty and zero values mean no project.
func ParseProjectRef(raw any) (*int64, error) {
	if raw == nil {
		return nil, nil
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, ok := toNumber(raw)
	if !ok || v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
		return nil, fmt.Errorf("%w: project_id %v", ErrInvalidPayload, raw)
	}
	if v == 0 {
		return nil, nil
	}
	id := int64(v)
	return &id, nil
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
