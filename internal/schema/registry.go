package schema

import "fmt"

var confidenceLevels = []string{"Low", "Medium", "High"}

var predictionItem = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"market":        {Kind: String},
		"prediction":    {Kind: String},
		"confidence":    {Kind: String, Enum: confidenceLevels},
		"justification": {Kind: String},
	},
	Required: []string{"market", "prediction", "confidence", "justification"},
}

var betSlip = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"title":    {Kind: String},
		"analysis": {Kind: String},
		"bets": {
			Kind: Array,
			Items: &Node{
				Kind: Object,
				Properties: map[string]*Node{
					"event":         {Kind: String},
					"market":        {Kind: String},
					"prediction":    {Kind: String},
					"justification": {Kind: String},
				},
				Required: []string{"event", "market", "prediction"},
			},
		},
	},
	Required: []string{"title", "bets"},
}

var goalscorerItem = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"playerName":    {Kind: String},
		"teamName":      {Kind: String},
		"match":         {Kind: String},
		"league":        {Kind: String},
		"confidence":    {Kind: String, Enum: confidenceLevels},
		"justification": {Kind: String},
	},
	Required: []string{"playerName", "match", "justification"},
}

var digitResult = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"date":        {Kind: String},
		"globalTrend": {Kind: String},
		"predictions": {
			Kind: Array,
			Items: &Node{
				Kind: Object,
				Properties: map[string]*Node{
					"match":               {Kind: String},
					"homeTeam":            {Kind: String},
					"awayTeam":            {Kind: String},
					"predictedDigit":      {Kind: String},
					"predictedTotalScore": {Kind: String},
					"confidence":          {Kind: String, Enum: confidenceLevels},
					"reasoning":           {Kind: String},
					"recentScores":        {Kind: Array, Items: &Node{Kind: String}},
				},
				Required: []string{"match", "homeTeam", "awayTeam", "predictedDigit", "predictedTotalScore", "confidence", "reasoning"},
			},
		},
	},
	Required: []string{"date", "predictions"},
}

var bestChoice = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"dataFound": {Kind: Boolean},
		"intro":     {Kind: String},
		"recommendations": {
			Kind: Array,
			Items: &Node{
				Kind: Object,
				Properties: map[string]*Node{
					"match":      {Kind: String},
					"market":     {Kind: String},
					"choice":     {Kind: String},
					"confidence": {Kind: Number},
					"reasoning":  {Kind: String},
				},
				Required: []string{"match", "market", "choice", "reasoning"},
			},
		},
		"conclusion": {Kind: String},
	},
	Required: []string{"dataFound", "intro", "recommendations", "conclusion"},
}

var keyStat = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"date":     {Kind: String},
		"opponent": {Kind: String},
		"stat":     {Kind: String},
	},
	Required: []string{"date", "opponent", "stat"},
}

var prophecy = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"date": {Kind: String},
		"picks": {
			Kind: Array,
			Items: &Node{
				Kind: Object,
				Properties: map[string]*Node{
					"match":             {Kind: String},
					"player":            {Kind: String},
					"bet":               {Kind: String},
					"odds":              {Kind: String},
					"confidenceLevel":   {Kind: String},
					"confidencePercent": {Kind: Number},
					"hero": {
						Kind: Object,
						Properties: map[string]*Node{
							"usage":  {Kind: String},
							"detail": {Kind: String},
						},
						Required: []string{"usage", "detail"},
					},
					"weakness": {
						Kind: Object,
						Properties: map[string]*Node{
							"dvp":    {Kind: String},
							"detail": {Kind: String},
						},
						Required: []string{"dvp", "detail"},
					},
					"scenario": {
						Kind: Object,
						Properties: map[string]*Node{
							"history": {Kind: String},
							"detail":  {Kind: String},
							"stats":   {Kind: Array, Items: keyStat},
						},
						Required: []string{"history", "detail"},
					},
					"valueAnalysis": {
						Kind: Object,
						Properties: map[string]*Node{
							"estimatedProbability": {Kind: String},
							"impliedOdds":          {Kind: String},
							"valueEdge":            {Kind: String},
						},
					},
					"risks": {Kind: String},
				},
				Required: []string{"match", "player", "bet", "hero", "weakness", "scenario"},
			},
		},
		"sources": {Kind: Array, Items: &Node{Kind: String}},
	},
	Required: []string{"date", "picks"},
}

var verification = &Node{
	Kind: Object,
	Properties: map[string]*Node{
		"actualResults": {Kind: String},
		"comparison":    {Kind: String},
		"isSuccess":     {Kind: Boolean, Nullable: true},
	},
	Required: []string{"actualResults", "comparison", "isSuccess"},
}

var registry = map[Ref]*Node{
	PredictionList: {Kind: Array, Items: predictionItem},
	BetSlip:        betSlip,
	BetSlipList:    {Kind: Array, Items: betSlip},
	GoalscorerList: {Kind: Array, Items: goalscorerItem},
	DigitResult:    digitResult,
	BestChoice:     bestChoice,
	Prophecy:       prophecy,
	Verification:   verification,
}

// Lookup resolves a registered contract by name.
func Lookup(ref Ref) (*Node, error) {
	node, ok := registry[ref]
	if !ok {
		return nil, fmt.Errorf("unknown schema ref: %s", ref)
	}
	return node, nil
}
