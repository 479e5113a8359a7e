package notes

// Summary is a bullet-point summary of a document.
type Summary struct {
	Points []string `json:"summaryPoints"`
}

// Flashcard is a key term and its definition.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Node is one topic of a mind map.
type Node struct {
	Topic    string `json:"topic"`
	Children []Node `json:"children,omitempty"`
}

// Size returns the number of nodes in the tree rooted at n.
func (n Node) Size() int {
	total := 1
	for _, c := range n.Children {
		total += c.Size()
	}
	return total
}

// Depth returns the number of levels below n.
func (n Node) Depth() int {
	deepest := 0
	for _, c := range n.Children {
		if d := c.Depth() + 1; d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Metadata is a suggested document title with topic tags.
type Metadata struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// Pack bundles every study aid generated for one document.
type Pack struct {
	Summary    Summary     `json:"summary"`
	Flashcards []Flashcard `json:"flashcards"`
	MindMap    Node        `json:"mindMap"`
}
