// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import "github.com/danielhkuo/zebrafish-catalog/models"

// UnitConflict records a behavior row whose unit differs from the unit kept
// for its behavior_type.
type UnitConflict struct {
	BehaviorType string `json:"behavior_type"`
	BehaviorID   int64  `json:"behavior_id"`
	Kept         string `json:"kept"`
	Found        string `json:"found"`
}

// GroupBehavior pivots flat behavior rows into one series per behavior_type.
//
// Rows are consumed in the order given. Each row appends its time_point and
// value to its type's series; the series' unit is taken from the first row
// seen for that type. Later rows with a different unit do not change the
// series, they are returned as conflicts instead.
func GroupBehavior(rows []models.BehaviorData) (map[string]models.BehaviorSeries, []UnitConflict) {
	grouped := make(map[string]models.BehaviorSeries)
	var conflicts []UnitConflict

	for _, row := range rows {
		series, ok := grouped[row.BehaviorType]
		if !ok {
			series = models.BehaviorSeries{
				TimePoints: []float64{},
				Values:     []float64{},
				Unit:       row.Unit,
			}
		} else if row.Unit != series.Unit {
			conflicts = append(conflicts, UnitConflict{
				BehaviorType: row.BehaviorType,
				BehaviorID:   row.BehaviorID,
				Kept:         series.Unit,
				Found:        row.Unit,
			})
		}
		series.TimePoints = append(series.TimePoints, row.TimePoint)
		series.Values = append(series.Values, row.Value)
		grouped[row.BehaviorType] = series
	}

	return grouped, conflicts
}
