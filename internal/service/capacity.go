// Package service contains the dose analytics engine: pure, stateless
// computations over snapshots of pens and doses.
package service

import (
	"math"
	"sort"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// round1 rounds a mg value to one decimal. Every derived mg value passes
// through this before being combined further, so repeated summation cannot
// accumulate floating-point drift.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// deci converts a mg value to tenths for exact integer comparison.
func deci(x float64) int64 {
	return int64(math.Round(x * 10))
}

// Availability computes what remains extractable from a pen of the given size
// after `used` mg have been recorded against it, completed and planned alike.
func Availability(size, used float64) model.Availability {
	clickCap := model.ClickCapacity(size)
	totalCap := model.TotalCapacity(size)

	fromClicks := round1(math.Max(0, clickCap-used))
	fromSyringe := round1(math.Max(0, totalCap-math.Max(used, clickCap)))

	return model.Availability{
		FromClicks:      fromClicks,
		FromSyringe:     fromSyringe,
		Total:           round1(fromClicks + fromSyringe),
		ClicksRemaining: int(math.Round(fromClicks * (60 / size))),
	}
}

// RequiresSyringe reports whether a dose of doseMg would reach past the
// click-metered capacity of the pen, given the mg already used before it.
func RequiresSyringe(size, usedBefore, doseMg float64) bool {
	return deci(usedBefore+doseMg) > deci(model.ClickCapacity(size))
}

// Breakdown splits a dose into its dial-metered and syringe-drawn portions.
func Breakdown(size, usedBefore, doseMg float64) model.DoseBreakdown {
	clicksAvailable := math.Max(0, model.ClickCapacity(size)-usedBefore)

	fromClicks := round1(math.Min(doseMg, clicksAvailable))
	fromSyringe := round1(doseMg - fromClicks)

	return model.DoseBreakdown{
		FromClicks:      fromClicks,
		FromSyringe:     fromSyringe,
		ClickCount:      int(math.Round(fromClicks * (60 / size))),
		RequiresSyringe: deci(fromSyringe) > 0,
	}
}

// IsDoseSyringe reports whether the given dose needs a syringe draw, deriving
// the usage before it from every other dose on the same pen with an earlier
// date. Completed and planned doses pool together, matching the capacity
// accounting everywhere else. A dose referencing an unknown pen returns false.
func IsDoseSyringe(dose model.Dose, pens []model.Pen, doses []model.Dose) bool {
	var pen *model.Pen
	for i := range pens {
		if pens[i].ID == dose.PenID {
			pen = &pens[i]
			break
		}
	}
	if pen == nil {
		return false
	}

	var usedBefore float64
	for _, d := range doses {
		if d.PenID == dose.PenID && d.ID != dose.ID && d.Date.Before(dose.Date) {
			usedBefore += d.Mg
		}
	}
	return RequiresSyringe(pen.Size, round1(usedBefore), dose.Mg)
}

// sortDosesByDate orders doses by date ascending, ties broken by id so the
// order is deterministic regardless of input order.
func sortDosesByDate(doses []model.Dose) {
	sort.Slice(doses, func(i, j int) bool {
		if doses[i].Date.Equal(doses[j].Date) {
			return doses[i].ID < doses[j].ID
		}
		return doses[i].Date.Before(doses[j].Date)
	})
}
