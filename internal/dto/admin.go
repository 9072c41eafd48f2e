package dto

// RowError reports why one CSV row was not imported. Line is 1-based and counts the header.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport summarises a question import run.
type ImportReport struct {
	Total      int        `json:"total"`
	Imported   int        `json:"imported"`
	Duplicates int        `json:"duplicates"`
	Failed     int        `json:"failed"`
	Errors     []RowError `json:"errors,omitempty"`
}
