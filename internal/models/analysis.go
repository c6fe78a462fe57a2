package models

// AnalysisResult is the four-part analysis bundle produced for one resume.
// Either fully populated with Success=true, or only Error populated with
// Success=false; never partially populated.
type AnalysisResult struct {
	ResumeText  string   `json:"resume_text,omitempty"`
	Role        string   `json:"role,omitempty"`
	ATSFeedback string   `json:"ats_feedback,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Success     bool     `json:"success"`
	Error       string   `json:"error,omitempty"`
}
