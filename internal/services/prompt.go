package services

import (
	"fmt"
	"strings"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildOpeningPrompt creates the prompt for the first interview question.
func (pb *PromptBuilder) BuildOpeningPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a senior technical interviewer.
Based on the following resume, generate ONE thoughtful opening interview question.
The question should be relevant to the candidate's primary skills and experience.
Return ONLY the question text, nothing else.

Resume:
%s
`, resumeText)
}

// BuildEvalAndNextPrompt creates the prompt that scores the current answer on
// four 0-10 axes and produces the next, strictly harder question.
func (pb *PromptBuilder) BuildEvalAndNextPrompt(
	resumeText string,
	previousQuestions, previousAnswers []string,
	currentQuestion, currentAnswer string,
) string {
	prevQA := formatTranscript(previousQuestions, previousAnswers)
	if prevQA == "" {
		prevQA = "None"
	}

	return fmt.Sprintf(`You are a senior technical interviewer.

Resume:
%s

Previous Questions and Answers:
%s

Current Question:
%s

Current Answer:
%s

Tasks:
1. Score from 0-10 for each:
   - technical_score (Technical depth)
   - clarity_score (Clarity of explanation)
   - structure_score (Structure and organization)
   - relevance_score (Relevance to the question)
2. Identify strengths (1-2 sentences).
3. Identify weaknesses (1-2 sentences).
4. Suggest one clear improvement_tip (1 sentence).
5. Generate the next interview question that is:
   - Adaptive to identified weaknesses
   - Slightly harder than the previous question
   - Based on the candidate's resume skills

Return ONLY valid JSON in this exact format:
{
  "evaluation": {
    "technical_score": <number>,
    "clarity_score": <number>,
    "structure_score": <number>,
    "relevance_score": <number>,
    "strengths": "<string>",
    "weaknesses": "<string>",
    "improvement_tip": "<string>"
  },
  "next_question": "<string>"
}`, resumeText, prevQA, currentQuestion, currentAnswer)
}

// BuildFinalReportPrompt creates the prompt that synthesizes the whole-interview
// report from the full transcript and the per-question evaluations.
func (pb *PromptBuilder) BuildFinalReportPrompt(
	resumeText string,
	questions, answers []string,
	evaluations []models.Evaluation,
) string {
	qaText := formatTranscript(questions, answers)

	var evalBuilder strings.Builder
	for i, ev := range evaluations {
		fmt.Fprintf(&evalBuilder,
			"\nQ%d Scores - Technical: %g, Clarity: %g, Structure: %g, Relevance: %g\nStrengths: %s\nWeaknesses: %s\n",
			i+1, ev.TechnicalScore, ev.ClarityScore, ev.StructureScore, ev.RelevanceScore,
			ev.Strengths, ev.Weaknesses)
	}

	return fmt.Sprintf(`You are a senior technical interviewer writing a final evaluation report.

Resume:
%s

Interview Questions and Answers:
%s

Per-Question Evaluations:
%s

Generate a comprehensive final report. The overall_score should be out of 100.

Return ONLY valid JSON in this exact format:
{
  "overall_score": <number 0-100>,
  "summary": "<2-3 sentence overall assessment>",
  "strong_areas": "<key strengths demonstrated>",
  "weak_areas": "<areas needing improvement>",
  "hire_recommendation": "<Strongly Recommend / Recommend / Consider / Do Not Recommend>",
  "improvement_roadmap": "<specific actionable steps to improve>"
}`, resumeText, qaText, evalBuilder.String())
}

func formatTranscript(questions, answers []string) string {
	var sb strings.Builder
	for i := 0; i < len(questions) && i < len(answers); i++ {
		fmt.Fprintf(&sb, "\nQ%d: %s\nA%d: %s\n", i+1, questions[i], i+1, answers[i])
	}
	return sb.String()
}
