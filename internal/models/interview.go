package models

// Evaluation is the per-answer score produced by the backend, one per round.
type Evaluation struct {
	TechnicalScore float64 `json:"technical_score"`
	ClarityScore   float64 `json:"clarity_score"`
	StructureScore float64 `json:"structure_score"`
	RelevanceScore float64 `json:"relevance_score"`
	Strengths      string  `json:"strengths"`
	Weaknesses     string  `json:"weaknesses"`
	ImprovementTip string  `json:"improvement_tip"`
}

// EvalAndNext is the two-key payload the backend returns mid-interview.
type EvalAndNext struct {
	Evaluation   Evaluation `json:"evaluation"`
	NextQuestion string     `json:"next_question"`
}

// FinalReport is the whole-interview assessment, produced once per session.
type FinalReport struct {
	OverallScore       float64 `json:"overall_score"`
	Summary            string  `json:"summary"`
	StrongAreas        string  `json:"strong_areas"`
	WeakAreas          string  `json:"weak_areas"`
	HireRecommendation string  `json:"hire_recommendation"`
	ImprovementRoadmap string  `json:"improvement_roadmap"`
}

type UploadResponse struct {
	SessionID     string `json:"session_id"`
	FirstQuestion string `json:"first_question"`
}

type EvaluateRequest struct {
	SessionID       string `json:"session_id"`
	CurrentQuestion string `json:"current_question"`
	CurrentAnswer   string `json:"current_answer"`
	// Kept for wire compatibility with older clients; the server-side
	// session transcript is the source of truth.
	PreviousQuestions []string `json:"previous_questions"`
	PreviousAnswers   []string `json:"previous_answers"`
}

type EvaluateResponse struct {
	Evaluation    Evaluation   `json:"evaluation"`
	NextQuestion  string       `json:"next_question,omitempty"`
	QuestionCount int          `json:"question_count"`
	FinalReport   *FinalReport `json:"final_report,omitempty"`
}
