package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"
)

// ComputeStats aggregates a result subset. Over an empty subset every
// derived field is zero; there is no division and no panic on any input.
func ComputeStats(results []models.Result) models.QuizStats {
	if len(results) == 0 {
		return models.QuizStats{}
	}

	totalScore := 0
	totalPercentage := 0
	highest := results[0].Score
	lowest := results[0].Score
	for _, r := range results {
		totalScore += r.Score
		totalPercentage += r.Percentage
		if r.Score > highest {
			highest = r.Score
		}
		if r.Score < lowest {
			lowest = r.Score
		}
	}

	n := float64(len(results))
	return models.QuizStats{
		TotalAttempts:     len(results),
		AverageScore:      round2(float64(totalScore) / n),
		AveragePercentage: round2(float64(totalPercentage) / n),
		HighestScore:      highest,
		LowestScore:       lowest,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SortKey selects the listing order for results.
type SortKey string

const (
	SortByCompletedAt SortKey = "completedAt"
	SortByScore       SortKey = "score"
	SortByPercentage  SortKey = "percentage"
	SortByUserName    SortKey = "userName"
)

// ParseSortKey accepts the wire value; empty defaults to completion time.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case "", SortByCompletedAt:
		return SortByCompletedAt, nil
	case SortByScore, SortByPercentage, SortByUserName:
		return SortKey(raw), nil
	default:
		return "", apperr.NewValidation("unknown sort key", "sortBy")
	}
}

// SortResults orders results in place with a stable comparator, so entries
// that compare equal keep their storage order.
func SortResults(results []models.Result, key SortKey, descending bool) {
	less := func(a, b models.Result) bool {
		switch key {
		case SortByScore:
			return a.Score < b.Score
		case SortByPercentage:
			return a.Percentage < b.Percentage
		case SortByUserName:
			return strings.ToLower(a.UserName) < strings.ToLower(b.UserName)
		default:
			return a.CompletedAt.Before(b.CompletedAt)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if descending {
			return less(results[j], results[i])
		}
		return less(results[i], results[j])
	})
}

// StatsService computes reporting views over the result store.
type StatsService struct {
	Results   ResultStore
	Quizzes   QuizStore
	Questions QuestionStore
	Cache     StatsCache
}

func NewStatsService(results ResultStore, quizzes QuizStore, questions QuestionStore, cache StatsCache) *StatsService {
	return &StatsService{Results: results, Quizzes: quizzes, Questions: questions, Cache: cache}
}

// QuizStats aggregates one quiz's results. Statistics are a read-only scan;
// snapshot consistency at scan time is all correctness requires, so a cached
// value within its TTL is acceptable.
func (s *StatsService) QuizStats(ctx context.Context, quizID string) (models.QuizStats, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, quizID); ok {
			return *cached, nil
		}
	}
	results, err := s.Results.FindByQuiz(ctx, quizID)
	if err != nil {
		return models.QuizStats{}, apperr.NewStorage("load quiz results", err)
	}
	stats := ComputeStats(results)
	if s.Cache != nil {
		s.Cache.Set(ctx, quizID, stats)
	}
	return stats, nil
}

const recentResultCount = 5

func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	totalQuizzes, err := s.Quizzes.Count(ctx)
	if err != nil {
		return nil, apperr.NewStorage("count quizzes", err)
	}
	totalQuestions, err := s.Questions.Count(ctx)
	if err != nil {
		return nil, apperr.NewStorage("count questions", err)
	}
	totalAttempts, err := s.Results.Count(ctx)
	if err != nil {
		return nil, apperr.NewStorage("count results", err)
	}
	recent, err := s.Results.FindRecent(ctx, recentResultCount)
	if err != nil {
		return nil, apperr.NewStorage("load recent results", err)
	}
	if recent == nil {
		recent = []models.Result{}
	}
	return &models.DashboardSummary{
		TotalQuizzes:   totalQuizzes,
		TotalQuestions: totalQuestions,
		TotalAttempts:  totalAttempts,
		RecentResults:  recent,
	}, nil
}
