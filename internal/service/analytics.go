package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/metrics"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// ErrInvalidDateRange is returned when a curve range has to before from.
var ErrInvalidDateRange = errors.New("invalid date range")

// AnalyticsService computes derived metrics over the stored pens and doses.
// Every operation loads a consistent snapshot of the data and evaluates it
// against a single timestamp captured at the start of the call.
type AnalyticsService interface {
	// PenMetrics computes the derived report for one pen.
	PenMetrics(ctx context.Context, userID primitive.ObjectID, penID string) (*model.PenMetric, error)
	// SystemMetrics computes the portfolio-wide report.
	SystemMetrics(ctx context.Context, userID primitive.ObjectID) (model.SystemMetrics, error)
	// ConcentrationCurve computes daily concentration points over [from, to].
	ConcentrationCurve(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]model.ConcentrationPoint, error)
	// ConcentrationAt computes the concentration at a single instant.
	ConcentrationAt(ctx context.Context, userID primitive.ObjectID, at time.Time) (model.ConcentrationPoint, error)
	// PreviewSystemMetrics evaluates a caller-supplied portfolio without
	// touching storage.
	PreviewSystemMetrics(pens []model.Pen, doses []model.Dose, now time.Time) model.SystemMetrics
}

// AnalyticsServiceImpl implements AnalyticsService.
type AnalyticsServiceImpl struct {
	pensRepo   repository.PensRepositoryInterface
	dosesRepo  repository.DosesRepositoryInterface
	calculator MetricsCalculator
	decay      DecayCalculator
	now        func() time.Time
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	pensRepo repository.PensRepositoryInterface,
	dosesRepo repository.DosesRepositoryInterface,
	calculator MetricsCalculator,
	decay DecayCalculator,
) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		pensRepo:   pensRepo,
		dosesRepo:  dosesRepo,
		calculator: calculator,
		decay:      decay,
		now:        time.Now,
	}
}

// PenMetrics computes the derived report for one pen.
func (s *AnalyticsServiceImpl) PenMetrics(ctx context.Context, userID primitive.ObjectID, penID string) (*model.PenMetric, error) {
	start := time.Now()
	now := s.now()

	pen, err := s.pensRepo.GetByID(ctx, userID, penID)
	if err != nil {
		metrics.RecordMetricsComputation(time.Since(start), "error", 0)
		return nil, err
	}

	doses, err := s.dosesRepo.List(ctx, userID)
	if err != nil {
		metrics.RecordMetricsComputation(time.Since(start), "error", 0)
		return nil, err
	}

	usage := PenUsage(doses)
	metric := s.calculator.PenMetrics(*pen, doses, usage, now)

	atRisk := 0
	if metric.RiskLevel != model.RiskNone {
		atRisk = 1
	}
	metrics.RecordMetricsComputation(time.Since(start), "success", atRisk)
	return &metric, nil
}

// SystemMetrics computes the portfolio-wide report.
func (s *AnalyticsServiceImpl) SystemMetrics(ctx context.Context, userID primitive.ObjectID) (model.SystemMetrics, error) {
	start := time.Now()
	now := s.now()

	pens, err := s.pensRepo.List(ctx, userID)
	if err != nil {
		metrics.RecordMetricsComputation(time.Since(start), "error", 0)
		return model.SystemMetrics{}, err
	}

	doses, err := s.dosesRepo.List(ctx, userID)
	if err != nil {
		metrics.RecordMetricsComputation(time.Since(start), "error", 0)
		return model.SystemMetrics{}, err
	}

	system := s.calculator.SystemMetrics(pens, doses, now)
	metrics.RecordMetricsComputation(time.Since(start), "success", len(system.PensAtRisk))
	return system, nil
}

// ConcentrationCurve computes daily concentration points over [from, to].
func (s *AnalyticsServiceImpl) ConcentrationCurve(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]model.ConcentrationPoint, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	doses, err := s.dosesRepo.List(ctx, userID)
	if err != nil {
		metrics.RecordCurveComputation("error")
		return nil, err
	}

	curve := s.decay.Curve(doses, from, to)
	metrics.RecordCurveComputation("success")
	return curve, nil
}

// ConcentrationAt computes the concentration at a single instant.
func (s *AnalyticsServiceImpl) ConcentrationAt(ctx context.Context, userID primitive.ObjectID, at time.Time) (model.ConcentrationPoint, error) {
	doses, err := s.dosesRepo.List(ctx, userID)
	if err != nil {
		metrics.RecordCurveComputation("error")
		return model.ConcentrationPoint{}, err
	}

	point := s.decay.ConcentrationAt(doses, at)
	metrics.RecordCurveComputation("success")
	return point, nil
}

// PreviewSystemMetrics evaluates a caller-supplied portfolio without touching
// storage. The caller may pin the evaluation time; a zero now means the
// current time.
func (s *AnalyticsServiceImpl) PreviewSystemMetrics(pens []model.Pen, doses []model.Dose, now time.Time) model.SystemMetrics {
	if now.IsZero() {
		now = s.now()
	}
	return s.calculator.SystemMetrics(pens, doses, now)
}
