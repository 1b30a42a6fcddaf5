package models

// Job is the canonical record produced by one extraction. Every field except
// URL is optional; the empty string means the field could not be determined.
// Producers trim whitespace, so a non-empty field is never blank text.
type Job struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Company    string `json:"company,omitempty"`
	Location   string `json:"location,omitempty"`
	Pay        string `json:"pay,omitempty"`
	PostedDate string `json:"posted_date,omitempty"`
	WorkMode   string `json:"work_mode,omitempty"`
}
