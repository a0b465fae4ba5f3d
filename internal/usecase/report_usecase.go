package usecase

import (
	"context"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tourism-inventory/internal/domain"
	"github.com/tourism-inventory/internal/domain/repository"
	"github.com/tourism-inventory/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReportUseCase produces the gap-analysis report: asset counts grouped by
// category, cached in Redis between writes.
type ReportUseCase struct {
	assetRepo repository.AssetRepository
	cache     repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewReportUseCase(
	assetRepo repository.AssetRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ReportUseCase {
	return &ReportUseCase{
		assetRepo: assetRepo,
		cache:     cache,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GapAnalysis returns parallel label/count arrays ordered by descending
// count. Labels are categories with the first letter upper-cased. An empty
// store yields empty arrays. Cache failures fall through to the database.
func (uc *ReportUseCase) GapAnalysis(ctx context.Context) (*dto.GapAnalysisResponse, error) {
	if cached, err := uc.cache.GetGapReport(ctx); err == nil && cached != nil {
		return &dto.GapAnalysisResponse{
			Labels: cached.Labels,
			Data:   cached.Data,
		}, nil
	} else if err != nil {
		uc.logger.Warn("Gap report cache read failed", zap.Error(err))
	}

	counts, err := uc.assetRepo.CountByCategory(ctx)
	if err != nil {
		uc.logger.Error("Failed to aggregate assets by category", zap.Error(err))
		return nil, err
	}

	report := &domain.GapReport{
		Labels: make([]string, 0, len(counts)),
		Data:   make([]int, 0, len(counts)),
	}
	for _, c := range counts {
		report.Labels = append(report.Labels, capitalize(c.Category))
		report.Data = append(report.Data, c.Count)
	}

	if err := uc.cache.SetGapReport(ctx, report, uc.cacheTTL); err != nil {
		uc.logger.Warn("Gap report cache write failed", zap.Error(err))
	}

	return &dto.GapAnalysisResponse{
		Labels: report.Labels,
		Data:   report.Data,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
