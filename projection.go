package stockfolio

import (
	"errors"
	"fmt"
)

// maxProjectionYears bounds the independence projection; past this the
// target is declared unreachable.
const maxProjectionYears = 200

// Independence projects how many years of compound market growth plus a
// yearly replenishment it takes for the portfolio to reach a target value.
type Independence struct {
	StartValue          float64
	AnnualReplenishment float64
	GrowthPercent       float64
	Target              float64
	Years               int
	FinalValue          float64
}

// NewIndependence runs the projection. Growth is applied to the running
// value each year, then the replenishment is added.
func NewIndependence(startValue, annualReplenishment, growthPercent, target float64) (Independence, error) {
	if target <= 0 {
		return Independence{}, errors.New("target must be positive")
	}
	if growthPercent <= 0 && annualReplenishment <= 0 {
		return Independence{}, errors.New("need positive growth or replenishment to ever reach the target")
	}
	p := Independence{
		StartValue:          startValue,
		AnnualReplenishment: annualReplenishment,
		GrowthPercent:       growthPercent,
		Target:              target,
	}
	value := startValue
	for value < target {
		if p.Years >= maxProjectionYears {
			return Independence{}, fmt.Errorf("target %.2f not reached within %d years", target, maxProjectionYears)
		}
		value = value*(1+growthPercent/100) + annualReplenishment
		p.Years++
	}
	p.FinalValue = value
	return p, nil
}
