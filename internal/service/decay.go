package service

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"time"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/service/cache"
)

// DefaultHalfLifeDays is the elimination half-life used when none is configured.
const DefaultHalfLifeDays = 5.0

// DecayCalculator models body concentration as the sum of exponentially
// decaying contributions of past doses.
type DecayCalculator interface {
	// ConcentrationAt samples the modeled concentration on the given day.
	ConcentrationAt(doses []model.Dose, at time.Time) model.ConcentrationPoint
	// Curve samples one point per day from `from` to `to` inclusive.
	Curve(doses []model.Dose, from, to time.Time) []model.ConcentrationPoint
	// HalfLifeDays returns the configured elimination half-life.
	HalfLifeDays() float64
	// InvalidateCache clears the curve cache (call after dose mutations).
	InvalidateCache()
}

// DecayOption configures a DecayCalculatorService.
type DecayOption func(*DecayCalculatorService)

// DecayCalculatorService implements DecayCalculator. Every dose contributes
// mg * 0.5^(days/halfLife) at each sampled day, with both the dose and the
// sample pinned to noon so results only depend on calendar days.
type DecayCalculatorService struct {
	halfLifeDays float64
	curveCache   cache.Cache
}

// NewDecayCalculatorService creates a DecayCalculatorService with the given options.
func NewDecayCalculatorService(opts ...DecayOption) *DecayCalculatorService {
	s := &DecayCalculatorService{halfLifeDays: DefaultHalfLifeDays}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithHalfLife sets a custom elimination half-life in days.
func WithHalfLife(days float64) DecayOption {
	return func(s *DecayCalculatorService) {
		if days > 0 {
			s.halfLifeDays = days
		}
	}
}

// WithCurveCache enables curve caching with the specified capacity and TTL.
func WithCurveCache(capacity int, ttl time.Duration) DecayOption {
	return func(s *DecayCalculatorService) {
		if capacity > 0 {
			s.curveCache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCurveCacheInterface allows injecting a custom cache implementation.
func WithCurveCacheInterface(c cache.Cache) DecayOption {
	return func(s *DecayCalculatorService) {
		s.curveCache = c
	}
}

// HalfLifeDays returns the configured elimination half-life.
func (s *DecayCalculatorService) HalfLifeDays() float64 { return s.halfLifeDays }

// InvalidateCache clears the curve cache.
func (s *DecayCalculatorService) InvalidateCache() {
	if s.curveCache != nil {
		s.curveCache.Clear()
	}
}

// ConcentrationAt samples the curve on the given day. Actual sums completed
// doses only; Projected additionally counts planned ones, showing the curve
// the schedule would produce if followed.
func (s *DecayCalculatorService) ConcentrationAt(doses []model.Dose, at time.Time) model.ConcentrationPoint {
	return model.ConcentrationPoint{
		Date:      startOfDay(at),
		Actual:    s.sum(doses, at, false),
		Projected: s.sum(doses, at, true),
	}
}

// Curve samples one concentration point per day over the inclusive range.
// An inverted range yields an empty slice.
func (s *DecayCalculatorService) Curve(doses []model.Dose, from, to time.Time) []model.ConcentrationPoint {
	start := startOfDay(from)
	end := startOfDay(to)
	if end.Before(start) {
		return []model.ConcentrationPoint{}
	}

	var key string
	if s.curveCache != nil {
		key = curveKey(s.halfLifeDays, start, end, doses)
		if points, ok := s.curveCache.Get(key); ok {
			return points
		}
	}

	points := make([]model.ConcentrationPoint, 0, daysBetween(start, end)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		points = append(points, s.ConcentrationAt(doses, day))
	}

	if s.curveCache != nil {
		s.curveCache.Set(key, points)
	}
	return points
}

// sum accumulates the decayed contribution of every dose taken on or before
// the target day.
func (s *DecayCalculatorService) sum(doses []model.Dose, at time.Time, includePlanned bool) float64 {
	target := noonOf(at)

	var concentration float64
	for _, d := range doses {
		if !includePlanned && !d.IsCompleted {
			continue
		}
		daysSince := target.Sub(noonOf(d.Date)).Hours() / 24
		if daysSince < 0 {
			continue
		}
		concentration += d.Mg * math.Pow(0.5, daysSince/s.halfLifeDays)
	}
	return concentration
}

// curveKey derives a cache key from everything the curve depends on.
func curveKey(halfLife float64, start, end time.Time, doses []model.Dose) string {
	h := fnv.New64a()
	var buf [8]byte
	for _, d := range doses {
		_, _ = h.Write([]byte(d.ID))
		binary.LittleEndian.PutUint64(buf[:], uint64(d.Date.Unix()))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(deci(d.Mg)))
		_, _ = h.Write(buf[:])
		if d.IsCompleted {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	}
	return strconv.FormatFloat(halfLife, 'g', -1, 64) + ":" +
		strconv.FormatInt(start.Unix(), 10) + ":" +
		strconv.FormatInt(end.Unix(), 10) + ":" +
		strconv.FormatUint(h.Sum64(), 16)
}
