package services

// BuildEvalAndNextSchema returns the JSON-Schema (draft 2020-12 subset) for the
// mid-interview payload: a seven-field evaluation plus the next question.
func BuildEvalAndNextSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"evaluation", "next_question"},
		"properties": map[string]any{
			"evaluation":    evaluationSchema(),
			"next_question": map[string]any{"type": "string", "minLength": 1},
		},
	}
}

// BuildFinalReportSchema returns the JSON-Schema for the six-field final report.
func BuildFinalReportSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"overall_score", "summary", "strong_areas",
			"weak_areas", "hire_recommendation", "improvement_roadmap",
		},
		"properties": map[string]any{
			"overall_score":       scoreProp(100),
			"summary":             map[string]any{"type": "string"},
			"strong_areas":        map[string]any{"type": "string"},
			"weak_areas":          map[string]any{"type": "string"},
			"hire_recommendation": map[string]any{"type": "string"},
			"improvement_roadmap": map[string]any{"type": "string"},
		},
	}
}

func evaluationSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"technical_score", "clarity_score", "structure_score",
			"relevance_score", "strengths", "weaknesses", "improvement_tip",
		},
		"properties": map[string]any{
			"technical_score": scoreProp(10),
			"clarity_score":   scoreProp(10),
			"structure_score": scoreProp(10),
			"relevance_score": scoreProp(10),
			"strengths":       map[string]any{"type": "string"},
			"weaknesses":      map[string]any{"type": "string"},
			"improvement_tip": map[string]any{"type": "string"},
		},
	}
}

func scoreProp(max float64) map[string]any {
	return map[string]any{
		"type":    "number",
		"minimum": 0.0,
		"maximum": max,
	}
}
