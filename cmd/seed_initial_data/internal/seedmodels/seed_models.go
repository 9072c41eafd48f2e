package seedmodels

// SeedQuestion is one multiple-choice question in the JSON seed file.
// CorrectOption is a zero-based index into Options.
type SeedQuestion struct {
	Topic         string   `json:"topic"`
	Content       string   `json:"content"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
	SourceYear    int      `json:"source_year"`
}

// SeedSubject groups the seed questions of one subject.
type SeedSubject struct {
	Name      string         `json:"subject"`
	Questions []SeedQuestion `json:"questions"`
}
