package oracle

import (
	"context"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// SingleEventPredictions returns 3-4 predictions for one confirmed
// fixture. The caller must have validated the event first.
func (s *Service) SingleEventPredictions(ctx context.Context, event model.Event) (Outcome[[]model.Prediction], error) {
	return s.predictionList(ctx, "single_event", singleEventTask(event))
}

// FirstHalfPredictions returns predictions restricted to first-half
// markets for one fixture.
func (s *Service) FirstHalfPredictions(ctx context.Context, event model.Event) (Outcome[[]model.Prediction], error) {
	return s.predictionList(ctx, "first_half", firstHalfTask(event))
}

func (s *Service) predictionList(ctx context.Context, surface, task string) (Outcome[[]model.Prediction], error) {
	raw, err := s.infer(ctx, surface, service.InferRequest{
		Task:        task,
		Schema:      schema.PredictionList,
		AllowSearch: true,
		Model:       modelFlash,
	})
	if err != nil {
		return empty[[]model.Prediction](), err
	}

	predictions, err := decodeAs[[]model.Prediction](raw, schema.PredictionList)
	if err != nil {
		return empty[[]model.Prediction](), err
	}

	usable := predictions[:0:0]
	for _, p := range predictions {
		if p.Usable() {
			usable = append(usable, p)
		}
	}
	if len(usable) == 0 {
		return empty[[]model.Prediction](), nil
	}
	return found(usable), nil
}
