package model

// Confidence expresses how strongly a forecast is held.
type Confidence string

// Confidence levels.
const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Prediction is one atomic forecast for a single market.
// An element missing Market or Prediction is invalid and is dropped
// by the response validator.
type Prediction struct {
	Market        string     `json:"market"`
	Prediction    string     `json:"prediction"`
	Confidence    Confidence `json:"confidence"`
	Justification string     `json:"justification"`
}

// Usable reports whether the prediction carries the fields required
// to render it.
func (p Prediction) Usable() bool {
	return p.Market != "" && p.Prediction != ""
}

// Bet is a single line of a bet slip.
type Bet struct {
	Event         string `json:"event"`
	Market        string `json:"market"`
	Prediction    string `json:"prediction"`
	Justification string `json:"justification,omitempty"`
}

// Usable reports whether the bet line carries enough content to stand
// on a slip.
func (b Bet) Usable() bool {
	return b.Event != "" && b.Market != "" && b.Prediction != ""
}

// BetSlip is a themed collection of bets. A slip with zero usable bets
// is a not-found condition, never an empty success.
type BetSlip struct {
	Title    string `json:"title"`
	Bets     []Bet  `json:"bets"`
	Analysis string `json:"analysis,omitempty"`
}

// GoalscorerPrediction forecasts a scorer for one fixture. Entries with
// an empty PlayerName are sentinels and are filtered before use.
type GoalscorerPrediction struct {
	PlayerName    string     `json:"playerName"`
	TeamName      string     `json:"teamName"`
	Match         string     `json:"match"`
	League        string     `json:"league"`
	Confidence    Confidence `json:"confidence"`
	Justification string     `json:"justification"`
}

// DigitPrediction is a per-match numeric-occurrence forecast backed by
// recently observed real scores.
type DigitPrediction struct {
	Match               string     `json:"match"`
	HomeTeam            string     `json:"homeTeam"`
	AwayTeam            string     `json:"awayTeam"`
	PredictedDigit      string     `json:"predictedDigit"`
	PredictedTotalScore string     `json:"predictedTotalScore"`
	Confidence          Confidence `json:"confidence"`
	Reasoning           string     `json:"reasoning"`
	RecentScores        []string   `json:"recentScores,omitempty"`
}

// DigitResult aggregates the digit forecasts for one slate of games.
// An empty Predictions list is a not-found condition.
type DigitResult struct {
	Date        string            `json:"date"`
	GlobalTrend string            `json:"globalTrend,omitempty"`
	Predictions []DigitPrediction `json:"predictions"`
}

// Recommendation is one weighted pick of a best-choice analysis.
// Confidence is a composite score in [0,100].
type Recommendation struct {
	Match      string  `json:"match"`
	Market     string  `json:"market"`
	Choice     string  `json:"choice"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// BestChoiceAnalysis is the expert-mode result. DataFound=false and an
// empty Recommendations list are equivalent not-found conditions.
type BestChoiceAnalysis struct {
	DataFound       bool             `json:"dataFound"`
	Intro           string           `json:"intro"`
	Recommendations []Recommendation `json:"recommendations"`
	Conclusion      string           `json:"conclusion"`
}

// KeyStat is one historical data point backing a prophecy scenario.
type KeyStat struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Stat     string `json:"stat"`
}

// ProphecyHero is the usage-rate key of a prophecy pick.
type ProphecyHero struct {
	Usage  string `json:"usage"`
	Detail string `json:"detail"`
}

// ProphecyWeakness is the defense-vs-position key of a prophecy pick.
type ProphecyWeakness struct {
	DvP    string `json:"dvp"`
	Detail string `json:"detail"`
}

// ProphecyScenario is the historical-repetition key of a prophecy pick.
type ProphecyScenario struct {
	History string    `json:"history"`
	Detail  string    `json:"detail"`
	Stats   []KeyStat `json:"stats"`
}

// ValueAnalysis compares the model's estimated probability with the
// bookmaker's implied one.
type ValueAnalysis struct {
	EstimatedProbability string `json:"estimatedProbability"`
	ImpliedOdds          string `json:"impliedOdds"`
	ValueEdge            string `json:"valueEdge"`
}

// ProphecyPick is a recommendation that passed all three strict keys
// (hero usage, positional weakness, historical scenario).
type ProphecyPick struct {
	Match             string           `json:"match"`
	Player            string           `json:"player"`
	Bet               string           `json:"bet"`
	Odds              string           `json:"odds"`
	ConfidenceLevel   string           `json:"confidenceLevel"`
	ConfidencePercent float64          `json:"confidencePercent"`
	Hero              ProphecyHero     `json:"hero"`
	Weakness          ProphecyWeakness `json:"weakness"`
	Scenario          ProphecyScenario `json:"scenario"`
	Value             ValueAnalysis    `json:"valueAnalysis"`
	Risks             string           `json:"risks"`
}

// ProphecyResult holds the picks for one night. An empty Picks list
// means the model abstained rather than force a risky bet.
type ProphecyResult struct {
	Date    string         `json:"date"`
	Picks   []ProphecyPick `json:"picks"`
	Sources []string       `json:"sources,omitempty"`
}
