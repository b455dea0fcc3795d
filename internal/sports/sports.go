// Package sports provides the static sports catalog.
package sports

import (
	"strings"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
)

var catalog = []model.Sport{
	{ID: "football", Name: "Football", Icon: "⚽"},
	{ID: "basketball", Name: "Basketball", Icon: "🏀"},
	{ID: "tennis", Name: "Tennis", Icon: "🎾"},
	{ID: "esports", Name: "E-Sports", Icon: "🎮"},
	{ID: "nhl", Name: "NHL", Icon: "🏒"},
}

// All returns the full catalog.
func All() []model.Sport {
	out := make([]model.Sport, len(catalog))
	copy(out, catalog)
	return out
}

// Find resolves a sport by id or name, case-insensitively.
func Find(idOrName string) (model.Sport, bool) {
	needle := strings.ToLower(strings.TrimSpace(idOrName))
	for _, s := range catalog {
		if strings.ToLower(s.ID) == needle || strings.ToLower(s.Name) == needle {
			return s, true
		}
	}
	return model.Sport{}, false
}
