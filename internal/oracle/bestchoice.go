package oracle

import (
	"context"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// BestChoice runs the Pro++ weighted-composite analysis for a sport
// and date. Emptiness is re-derived locally from the filtered
// recommendations; the provider's dataFound flag is honored only as an
// additional empty signal, never to override a locally empty set.
func (s *Service) BestChoice(ctx context.Context, sport, date string) (Outcome[model.BestChoiceAnalysis], error) {
	raw, err := s.infer(ctx, "best_choice", service.InferRequest{
		Task:        bestChoiceTask(sport, date),
		Schema:      schema.BestChoice,
		AllowSearch: true,
		Model:       modelFlash,
	})
	if err != nil {
		return empty[model.BestChoiceAnalysis](), err
	}

	analysis, err := decodeAs[model.BestChoiceAnalysis](raw, schema.BestChoice)
	if err != nil {
		return empty[model.BestChoiceAnalysis](), err
	}

	usable := analysis.Recommendations[:0:0]
	for _, rec := range analysis.Recommendations {
		if rec.Match == "" || rec.Market == "" || rec.Choice == "" {
			continue
		}
		usable = append(usable, rec)
	}

	if !analysis.DataFound || len(usable) == 0 {
		return empty[model.BestChoiceAnalysis](), nil
	}
	analysis.Recommendations = usable
	return found(analysis), nil
}
