package quiz

// Question is one multiple-choice question. Answer is the text of the
// correct option.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Quiz is a generated set of questions.
type Quiz struct {
	Questions []Question `json:"quiz"`
}
