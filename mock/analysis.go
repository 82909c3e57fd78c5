package mock

import (
	"context"

	"github.com/fwojciec/skeptic"
)

var _ skeptic.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of skeptic.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn    func(ctx context.Context, analysis *skeptic.Analysis) error
	FindAnalysisByIDFn  func(ctx context.Context, id string) (*skeptic.Analysis, error)
	FindAnalysisByURLFn func(ctx context.Context, url string) (*skeptic.Analysis, error)
	FindAnalysesFn      func(ctx context.Context, filter skeptic.AnalysisFilter) ([]*skeptic.Analysis, error)
	DeleteAnalysisFn    func(ctx context.Context, id string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *skeptic.Analysis) error {
	return s.CreateAnalysisFn(ctx, analysis)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*skeptic.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalysisByURL(ctx context.Context, url string) (*skeptic.Analysis, error) {
	return s.FindAnalysisByURLFn(ctx, url)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter skeptic.AnalysisFilter) ([]*skeptic.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}
