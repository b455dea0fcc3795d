package oracle

import (
	"context"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// DigitAnalysis produces the per-game digit-occurrence forecast for an
// NBA slate. An empty predictions list means no games could be
// confirmed for the date.
func (s *Service) DigitAnalysis(ctx context.Context, date string) (Outcome[model.DigitResult], error) {
	raw, err := s.infer(ctx, "nba_digit", service.InferRequest{
		Task:        digitTask(date),
		Schema:      schema.DigitResult,
		AllowSearch: true,
		Model:       modelFlash,
	})
	if err != nil {
		return empty[model.DigitResult](), err
	}

	result, err := decodeAs[model.DigitResult](raw, schema.DigitResult)
	if err != nil {
		return empty[model.DigitResult](), err
	}

	usable := result.Predictions[:0:0]
	for _, p := range result.Predictions {
		if p.Match == "" || p.PredictedDigit == "" {
			continue
		}
		usable = append(usable, p)
	}
	if len(usable) == 0 {
		return empty[model.DigitResult](), nil
	}
	result.Predictions = usable
	return found(result), nil
}
