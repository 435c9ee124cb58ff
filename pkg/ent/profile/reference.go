package profile

// Term is a controlled-vocabulary label. A (VocabID, Name) pair is unique.
type Term struct {
	ID      string `json:"id"`
	VocabID string `json:"vocabId"`
	Name    string `json:"name"`
}

// Contributor is a person or an organization credited as a creator or an
// editor. Name is unique and is always in a cleaned form.
type Contributor struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// DataResourceID is the data resource that introduced the contributor.
	DataResourceID string `json:"dataResourceId"`
}
