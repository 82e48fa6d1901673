package services

import (
	"context"
	"fmt"
	"log"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
	"github.com/vishalnotfound/AI-Interview-Agent/internal/repositories"
)

type InterviewService interface {
	StartInterview(ctx context.Context, resumeText string) (*models.Session, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*models.EvaluateResponse, error)
}

type interviewService struct {
	sessionRepo    repositories.SessionRepository
	client         CompletionClient
	promptBuilder  *PromptBuilder
	totalQuestions int
}

func NewInterviewService(
	sessionRepo repositories.SessionRepository,
	client CompletionClient,
	totalQuestions int,
) InterviewService {
	return &interviewService{
		sessionRepo:    sessionRepo,
		client:         client,
		promptBuilder:  NewPromptBuilder(),
		totalQuestions: totalQuestions,
	}
}

// StartInterview implements InterviewService. It generates the opening question
// from the resume and creates a session holding it.
func (s *interviewService) StartInterview(ctx context.Context, resumeText string) (*models.Session, error) {
	prompt := s.promptBuilder.BuildOpeningPrompt(resumeText)

	question, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate opening question: %w", err)
	}

	session := s.sessionRepo.Create(resumeText, question)
	log.Printf("✅ Interview session %s started (%d questions)\n", session.ID, s.totalQuestions)

	return session, nil
}

// SubmitAnswer implements InterviewService. The whole transition runs under the
// session's own lock, and every backend call happens BEFORE the transcript is
// touched: a failed evaluation or report leaves the session exactly as it was,
// so an answer is never recorded without its evaluation.
func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*models.EvaluateResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if session.Completed {
		return nil, models.ErrInterviewComplete
	}

	currentQuestion := session.Questions[len(session.Questions)-1]
	answeredQuestions := session.Questions[:len(session.Answers)]

	prompt := s.promptBuilder.BuildEvalAndNextPrompt(
		session.ResumeText,
		answeredQuestions,
		session.Answers,
		currentQuestion,
		answer,
	)

	completion, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	var result models.EvalAndNext
	if err := DecodeStructured(completion, evalAndNextSchema, &result); err != nil {
		return nil, err
	}

	answeredCount := session.AnsweredCount() + 1

	if answeredCount >= s.totalQuestions {
		return s.finishInterview(ctx, session, answer, result.Evaluation, answeredCount)
	}

	session.Answers = append(session.Answers, answer)
	session.Evaluations = append(session.Evaluations, result.Evaluation)
	session.Questions = append(session.Questions, result.NextQuestion)
	s.sessionRepo.Touch(session.ID)

	return &models.EvaluateResponse{
		Evaluation:    result.Evaluation,
		NextQuestion:  result.NextQuestion,
		QuestionCount: answeredCount,
	}, nil
}

// finishInterview generates the final report for the full transcript, then
// commits the last round and marks the session complete in one step. No
// further question is appended. Caller holds the session lock.
func (s *interviewService) finishInterview(
	ctx context.Context,
	session *models.Session,
	answer string,
	evaluation models.Evaluation,
	answeredCount int,
) (*models.EvaluateResponse, error) {
	answers := append(append([]string{}, session.Answers...), answer)
	evaluations := append(append([]models.Evaluation{}, session.Evaluations...), evaluation)

	prompt := s.promptBuilder.BuildFinalReportPrompt(session.ResumeText, session.Questions, answers, evaluations)

	completion, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate final report: %w", err)
	}

	var report models.FinalReport
	if err := DecodeStructured(completion, finalReportSchema, &report); err != nil {
		return nil, err
	}

	session.Answers = answers
	session.Evaluations = evaluations
	session.Completed = true
	session.Report = &report
	s.sessionRepo.Touch(session.ID)

	log.Printf("🏁 Interview session %s complete, overall score %.0f\n", session.ID, report.OverallScore)

	return &models.EvaluateResponse{
		Evaluation:    evaluation,
		QuestionCount: answeredCount,
		FinalReport:   &report,
	}, nil
}
