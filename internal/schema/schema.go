// Package schema declares the structural contracts every inference
// response must satisfy. Contracts are pure declarative data: the
// request side converts them to the provider's schema format, and the
// response validator checks decoded payloads against the same tree.
package schema

// Kind is the JSON type of a schema node.
type Kind string

// Schema node kinds.
const (
	Object  Kind = "object"
	Array   Kind = "array"
	String  Kind = "string"
	Number  Kind = "number"
	Boolean Kind = "boolean"
)

// Node is one node of a declarative response contract.
type Node struct {
	Kind       Kind
	Properties map[string]*Node // object nodes
	Items      *Node            // array nodes
	Required   []string         // object nodes: properties that must be present
	Enum       []string         // string nodes: allowed values
	Nullable   bool             // value may be JSON null
}

// Ref names a registered contract. Components requesting structured
// inference output must reference exactly one Ref; ad hoc shapes are
// not accepted for anything persisted or rendered as structured data.
type Ref string

// Registered contracts, one per task type.
const (
	PredictionList Ref = "prediction_list"
	BetSlip        Ref = "bet_slip"
	BetSlipList    Ref = "bet_slip_list"
	GoalscorerList Ref = "goalscorer_list"
	DigitResult    Ref = "digit_result"
	BestChoice     Ref = "best_choice"
	Prophecy       Ref = "prophecy"
	Verification   Ref = "verification"
)
