package tools

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rtavil/salespipe/pkg/domain"
)

// ScoreLead computes a lead score from company size and buying intent.
// score = round(employee_count/100 + intent*3, 2); tier A >= 12, B >= 6,
// else C. Inputs arrive loosely typed (JSON numbers, strings) and are
// coerced to integers; a failed coercion returns domain.ErrInvalidInput.
// Pure: no side effects, no retries.
func ScoreLead(companyName string, employeeCount, intentScore any) (domain.ScoreRecord, error) {
	emp, err := coerceInt(employeeCount)
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("employee_count %v: %w", employeeCount, domain.ErrInvalidInput)
	}
	intent, err := coerceInt(intentScore)
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("intent_score %v: %w", intentScore, domain.ErrInvalidInput)
	}

	base := float64(emp)/100.0 + float64(intent)*3
	score := math.Round(base*100) / 100

	tier := domain.TierC
	switch {
	case score >= 12:
		tier = domain.TierA
	case score >= 6:
		tier = domain.TierB
	}

	return domain.ScoreRecord{
		CompanyName: companyName,
		Score:       score,
		Tier:        tier,
	}, nil
}

func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil // JSON numbers decode as float64; truncate
	case float32:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", v)
	}
}
