package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// Goalscorer-capable sports.
const (
	GoalscorerFootball = "football"
	GoalscorerHockey   = "hockey"
)

// GoalscorerPredictions returns the top likely scorers for a date.
// Entries with a blank player name are sentinels from the provider and
// are filtered out before the outcome is classified.
func (s *Service) GoalscorerPredictions(ctx context.Context, date, sport string) (Outcome[[]model.GoalscorerPrediction], error) {
	if sport != GoalscorerFootball && sport != GoalscorerHockey {
		return empty[[]model.GoalscorerPrediction](),
			fmt.Errorf("%w: goalscorer analysis supports football or hockey, got %q", common.ErrInvalidInput, sport)
	}

	raw, err := s.infer(ctx, "goalscorer", service.InferRequest{
		Task:        goalscorerTask(date, sport),
		Schema:      schema.GoalscorerList,
		AllowSearch: true,
		Model:       modelFlash,
	})
	if err != nil {
		return empty[[]model.GoalscorerPrediction](), err
	}

	scorers, err := decodeAs[[]model.GoalscorerPrediction](raw, schema.GoalscorerList)
	if err != nil {
		return empty[[]model.GoalscorerPrediction](), err
	}

	usable := scorers[:0:0]
	for _, sc := range scorers {
		if strings.TrimSpace(sc.PlayerName) == "" {
			continue
		}
		usable = append(usable, sc)
	}
	if len(usable) == 0 {
		return empty[[]model.GoalscorerPrediction](), nil
	}
	return found(usable), nil
}
