package coach

// PlanItem is one scheduled study block.
type PlanItem struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Task     string `json:"task"`
	Duration string `json:"duration"`
}

// Plan is a weekly study schedule.
type Plan struct {
	Items []PlanItem `json:"plan"`
}

// FeynmanEvaluation is feedback on a student's plain-language explanation
// of a concept.
type FeynmanEvaluation struct {
	Feedback           string   `json:"feedback"`
	WeakSpots          []string `json:"weakSpots"`
	ClarityScore       int      `json:"clarityScore"`
	TextbookDefinition string   `json:"textbookDefinition"`
}
