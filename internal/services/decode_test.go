package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
)

const validEvalJSON = `{
  "evaluation": {
    "technical_score": 7,
    "clarity_score": 6,
    "structure_score": 8,
    "relevance_score": 7.5,
    "strengths": "Clear grasp of goroutine scheduling.",
    "weaknesses": "Did not mention channel pitfalls.",
    "improvement_tip": "Work through a deadlock example."
  },
  "next_question": "How does the Go scheduler handle blocking syscalls?"
}`

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no fence",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "fence with language tag",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "fence without tag",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "surrounding whitespace",
			input: "\n  ```json\n{\"a\":1}\n```  \n",
			want:  `{"a":1}`,
		},
		{
			name:  "leading fence only",
			input: "```json\n{\"a\":1}",
			want:  `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.want {
				t.Errorf("StripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeStructured_FencedEqualsBare(t *testing.T) {
	var bare, fenced models.EvalAndNext

	if err := DecodeStructured(validEvalJSON, evalAndNextSchema, &bare); err != nil {
		t.Fatalf("DecodeStructured(bare) returned error: %v", err)
	}

	wrapped := "```json\n" + validEvalJSON + "\n```"
	if err := DecodeStructured(wrapped, evalAndNextSchema, &fenced); err != nil {
		t.Fatalf("DecodeStructured(fenced) returned error: %v", err)
	}

	if !reflect.DeepEqual(bare, fenced) {
		t.Errorf("fenced decode differs from bare decode:\n%+v\n%+v", fenced, bare)
	}

	if bare.Evaluation.TechnicalScore != 7 {
		t.Errorf("technical_score = %v, want 7", bare.Evaluation.TechnicalScore)
	}
	if bare.NextQuestion == "" {
		t.Error("next_question is empty")
	}
}

func TestDecodeStructured_FailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "not json",
			input: "I would rate this answer a solid 7 out of 10.",
		},
		{
			name:  "empty completion",
			input: "",
		},
		{
			name:  "missing evaluation field",
			input: `{"next_question": "What is a mutex?"}`,
		},
		{
			name: "score out of range",
			input: `{"evaluation":{"technical_score":17,"clarity_score":6,"structure_score":8,
				"relevance_score":7,"strengths":"a","weaknesses":"b","improvement_tip":"c"},
				"next_question":"q"}`,
		},
		{
			name: "unknown extra key",
			input: `{"evaluation":{"technical_score":7,"clarity_score":6,"structure_score":8,
				"relevance_score":7,"strengths":"a","weaknesses":"b","improvement_tip":"c"},
				"next_question":"q","confidence":0.9}`,
		},
		{
			name: "score is a string",
			input: `{"evaluation":{"technical_score":"seven","clarity_score":6,"structure_score":8,
				"relevance_score":7,"strengths":"a","weaknesses":"b","improvement_tip":"c"},
				"next_question":"q"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target models.EvalAndNext
			err := DecodeStructured(tt.input, evalAndNextSchema, &target)
			if err == nil {
				t.Fatal("DecodeStructured() returned nil error, want ErrMalformedCompletion")
			}
			if !errors.Is(err, models.ErrMalformedCompletion) {
				t.Errorf("error = %v, want ErrMalformedCompletion", err)
			}
		})
	}
}

func TestDecodeStructured_FinalReport(t *testing.T) {
	input := "```json\n" + `{
	  "overall_score": 82,
	  "summary": "Strong backend fundamentals with gaps in distributed systems.",
	  "strong_areas": "Go concurrency, API design",
	  "weak_areas": "Consensus protocols",
	  "hire_recommendation": "Recommend",
	  "improvement_roadmap": "Build a raft-based key-value store."
	}` + "\n```"

	var report models.FinalReport
	if err := DecodeStructured(input, finalReportSchema, &report); err != nil {
		t.Fatalf("DecodeStructured() returned error: %v", err)
	}

	if report.OverallScore != 82 {
		t.Errorf("overall_score = %v, want 82", report.OverallScore)
	}
	if report.HireRecommendation != "Recommend" {
		t.Errorf("hire_recommendation = %q, want %q", report.HireRecommendation, "Recommend")
	}
}

func TestDecodeStructured_FinalReportScoreAbove100(t *testing.T) {
	input := `{
	  "overall_score": 120,
	  "summary": "s", "strong_areas": "s", "weak_areas": "w",
	  "hire_recommendation": "Recommend", "improvement_roadmap": "r"
	}`

	var report models.FinalReport
	err := DecodeStructured(input, finalReportSchema, &report)
	if !errors.Is(err, models.ErrMalformedCompletion) {
		t.Errorf("error = %v, want ErrMalformedCompletion", err)
	}
}
