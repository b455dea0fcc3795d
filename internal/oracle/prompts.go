package oracle

import (
	"fmt"
	"strings"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
)

// Gemini model tiers. Mega-bet slips use the pro tier; everything else
// runs on flash.
const (
	modelFlash = "gemini-3-flash-preview"
	modelPro   = "gemini-3-pro-preview"
)

func singleEventTask(event model.Event) string {
	return fmt.Sprintf(`Analyze the %s match: %s vs %s on %s.
INSTRUCTIONS:
1. Use Google Search to confirm the event actually takes place on that date.
2. Provide 3-4 predictions across distinct markets.
FORMAT: JSON array of prediction objects.`,
		event.Sport, event.TeamA.Name, event.TeamB.Name, event.Date)
}

func firstHalfTask(event model.Event) string {
	return fmt.Sprintf(`First-half focus only. Match: %s vs %s (%s).
Predict first-half markets exclusively (half-time result, first-half goals, first-half corners).
FORMAT: JSON array of prediction objects.`,
		event.TeamA.Name, event.TeamB.Name, event.Date)
}

func ticketTask(sport string, eventCount int, dateRange string) string {
	return fmt.Sprintf(`Use Google Search to find %d real %s matches %s.
Build a coherent bettor's ticket. For each match give the market (e.g. Winner, Total goals) and the prediction.
Only include matches you can confirm are actually scheduled; if none can be confirmed, return a slip with an empty bets list.`,
		eventCount, sport, dateRange)
}

func megaBetsTask(date string) string {
	return fmt.Sprintf(`Create 3 accumulator bet slips for the sporting events of %s.
Each slip must have a theme (e.g. "The Safe One", "The Long Shot", "Over/Under Special").
Ground every bet in real scheduled fixtures found via Google Search.`, date)
}

func recommendationTask() string {
	return `What are the safest bets today? Generate 2 recommended tickets grounded in real fixtures found via Google Search.`
}

func goalscorerTask(date, sport string) string {
	return fmt.Sprintf(`Top 5 likely goalscorers in %s on %s.
Use Google Search to confirm fixtures and lineups. Never invent a player: omit an entry rather than guess a name.
FORMAT: JSON array of goalscorer prediction objects.`, sport, date)
}

func digitTask(date string) string {
	return fmt.Sprintf(`You are an expert in NBA numeric probabilities. Analyze EVERY game of the night of %s.
1. Use Google Search to list all NBA games on %s.
2. For EACH game, analyze how often each digit (0-9) appears in the teams' recent scores, then predict the most likely digit and an estimated total score, backed by a short list of recently observed real results.
FORMAT: STRICT JSON.`, date, date)
}

// bestChoiceTask encodes the expert-mode weighting rules. Football
// gets the granular corner/card composite; every other sport is scored
// on raw performance, squad status and head-to-head context.
func bestChoiceTask(sport, date string) string {
	isFootball := strings.Contains(strings.ToLower(sport), "foot")

	var specialized string
	if isFootball {
		specialized = `FOOTBALL-SPECIFIC ANALYTICAL DIRECTIVES (PRO++):
Your analysis must focus EXCLUSIVELY on combo result markets.
Weight your Confidence Score (0-100) as follows:
1. GRANULAR FACTORS (60%):
   - CORNERS (30%): average per match, per-team tendencies (wing play).
   - CARDS (30%): referee style and defensive aggressiveness.
2. MATCH SCENARIO (40%):
   - GOALS PER HALF (20%): probability of scoring in 1st/2nd half.
   - FINAL RESULT (20%): home/draw/away combined with the stats above.

EXAMPLES OF REQUIRED MARKETS:
- "Home win & Under 10 corners & Over 6 cards"
- "Over 2.5 goals & Over 8.5 corners & Over 3.5 cards"
- "Penalty awarded to both teams"`
	} else {
		specialized = fmt.Sprintf(`ANALYTICAL DIRECTIVES FOR OTHER SPORTS (%s):
Do NOT propose corner or card markets where they do not apply.
Focus on CORE MARKETS (Winner, Total points/goals, Handicap/Spread).
Weight your Confidence Score (0-100) as follows:
1. RAW PERFORMANCE (60%%): offensive/defensive efficiency (e.g. FG%% in the NBA, ace rate in tennis).
2. SQUAD STATUS (20%%): key injuries, fatigue (back-to-backs), form over the last 5 games.
3. CONTEXT & STAKES (20%%): head-to-head history and importance of the fixture.`, sport)
	}

	return fmt.Sprintf(`You are an expert sports-betting Decision Agent (Pro++ mode).
Sport: %s
Date: %s

%s

MISSION:
1. Use Google Search to find the real major %s fixtures on %s.
2. Identify the high-confidence recommendations and cite the weighted factors in each rationale.
3. Required narrative format: "After analyzing [the sport-specific statistics], for the market [X] I recommend choosing [Z] because [detailed analysis following the requested weightings]... you maximize your chances via [synthesis]."
4. If no real fixture can be confirmed for that date, set dataFound to false and leave recommendations empty. Never fabricate fixtures.`,
		sport, date, specialized, sport, date)
}

func prophecyTask(date string) string {
	return fmt.Sprintf(`You are a ruthless NBA prop auditor applying the Three Keys filter for the night of %s.
Use Google Search to list the real games and lineups, then keep ONLY picks that pass ALL three keys:
1. THE HERO: usage rate above 30%%.
2. THE WEAKNESS: opponent ranks bottom 7 in defense versus the player's position.
3. THE SCENARIO: the targeted line hit in more than 85%% of comparable past matchups, with the supporting historical stats listed.
For each surviving pick, add a value analysis (your estimated probability vs the bookmaker's implied one) and the main risks.
If no pick passes all three keys, return an empty picks list. Abstaining is always preferable to a forced bet.`, date)
}

// verificationTask embeds the stored prediction payload so the auditor
// compares against exactly what was promised at generation time. A
// failed verdict is only permitted when the event demonstrably took
// place and real results contradict the prediction.
func verificationTask(entry model.HistoryEntry) string {
	return fmt.Sprintf(`You are an impartial results auditor. A prediction was recorded on %s under the label %q.

STORED PREDICTION (JSON):
%s

MISSION:
1. Use Google Search to find the real, final results of the event(s) covered by this prediction.
2. Summarize the real results in actualResults and compare them point by point with the stored prediction in comparison.
3. Set isSuccess to true only if the prediction held, false only if the event demonstrably took place and the real results contradict it.
4. If the event has not been played yet, or no reliable result can be found, set isSuccess to null and say so in actualResults. Never guess an outcome.`,
		entry.GeneratedAt().Format("2006-01-02"), entry.Label, string(entry.Data))
}
