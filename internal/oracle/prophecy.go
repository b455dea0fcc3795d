package oracle

import (
	"context"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// Prophecy runs the strict Three Keys NBA prop filter. An empty picks
// list is the model abstaining, surfaced as the not-found outcome.
func (s *Service) Prophecy(ctx context.Context, date string) (Outcome[model.ProphecyResult], error) {
	raw, err := s.infer(ctx, "nba_prophecy", service.InferRequest{
		Task:        prophecyTask(date),
		Schema:      schema.Prophecy,
		AllowSearch: true,
		Model:       modelPro,
	})
	if err != nil {
		return empty[model.ProphecyResult](), err
	}

	result, err := decodeAs[model.ProphecyResult](raw, schema.Prophecy)
	if err != nil {
		return empty[model.ProphecyResult](), err
	}

	usable := result.Picks[:0:0]
	for _, pick := range result.Picks {
		if pick.Player == "" || pick.Bet == "" {
			continue
		}
		usable = append(usable, pick)
	}
	if len(usable) == 0 {
		return empty[model.ProphecyResult](), nil
	}
	result.Picks = usable
	return found(result), nil
}
