package service

import "github.com/Askwho/mounjaro-hub/internal/domain/model"

// PenUsage totals the recorded mg per pen id. Planned doses reserve capacity
// exactly as completed ones consume it, so both pool into the same figure.
func PenUsage(doses []model.Dose) map[string]float64 {
	usage := make(map[string]float64, 8)
	for _, d := range doses {
		usage[d.PenID] += d.Mg
	}
	for id, mg := range usage {
		usage[id] = round1(mg)
	}
	return usage
}
