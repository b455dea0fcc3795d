package oracle

import (
	"context"
	"fmt"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// filterSlip drops placeholder bet lines. A slip whose bets are all
// unusable is reported as not kept: empties propagate upward rather
// than rendering as a hollow success.
func filterSlip(slip model.BetSlip) (model.BetSlip, bool) {
	usable := slip.Bets[:0:0]
	for _, b := range slip.Bets {
		if b.Usable() {
			usable = append(usable, b)
		}
	}
	if len(usable) == 0 {
		return model.BetSlip{}, false
	}
	slip.Bets = usable
	return slip, true
}

// BuildTicket asks for a coherent accumulator of eventCount fixtures.
// eventCount must already satisfy the [2,10] bound.
func (s *Service) BuildTicket(ctx context.Context, sport string, eventCount int, dateRange string) (Outcome[model.BetSlip], error) {
	raw, err := s.infer(ctx, "ticket", service.InferRequest{
		Task:        ticketTask(sport, eventCount, dateRange),
		Schema:      schema.BetSlip,
		AllowSearch: true,
		Model:       modelFlash,
	})
	if err != nil {
		return empty[model.BetSlip](), err
	}

	slip, err := decodeAs[model.BetSlip](raw, schema.BetSlip)
	if err != nil {
		return empty[model.BetSlip](), err
	}

	filtered, ok := filterSlip(slip)
	if !ok {
		return empty[model.BetSlip](), nil
	}
	return found(filtered), nil
}

// MegaBets returns three themed accumulator slips for a date.
func (s *Service) MegaBets(ctx context.Context, date string) (Outcome[[]model.BetSlip], error) {
	return s.slipList(ctx, "mega_bets", service.InferRequest{
		Task:        megaBetsTask(date),
		Schema:      schema.BetSlipList,
		AllowSearch: true,
		Model:       modelPro,
	})
}

// Recommendations returns two safe slips for today.
func (s *Service) Recommendations(ctx context.Context) (Outcome[[]model.BetSlip], error) {
	return s.slipList(ctx, "recommendation", service.InferRequest{
		Task:        recommendationTask(),
		Schema:      schema.BetSlipList,
		AllowSearch: true,
		Model:       modelFlash,
	})
}

func (s *Service) slipList(ctx context.Context, surface string, req service.InferRequest) (Outcome[[]model.BetSlip], error) {
	raw, err := s.infer(ctx, surface, req)
	if err != nil {
		return empty[[]model.BetSlip](), err
	}

	slips, err := decodeAs[[]model.BetSlip](raw, req.Schema)
	if err != nil {
		return empty[[]model.BetSlip](), fmt.Errorf("%s: %w", surface, err)
	}

	kept := slips[:0:0]
	for _, slip := range slips {
		if filtered, ok := filterSlip(slip); ok {
			kept = append(kept, filtered)
		}
	}
	if len(kept) == 0 {
		return empty[[]model.BetSlip](), nil
	}
	return found(kept), nil
}
