// pricing/progress.go
package pricing

import "github.com/jupiterai/jupiterctl/model"

// Progress describes how far a user's usage has come toward a discount tier.
type Progress struct {
	// Percent of the minimum-request threshold reached, capped at 100.
	Percent float64
	// Remaining requests until the threshold; zero once reached.
	Remaining int64
	// Reached is true once usage meets the minimum threshold.
	Reached bool
	// Exceeded is true when the tier has an upper bound and usage passed it.
	Exceeded bool
}

// TierProgress computes display progress for one available discount.
func TierProgress(d model.AvailableDiscount) Progress {
	p := Progress{}
	if d.MinRequests <= 0 {
		p.Percent = 100
		p.Reached = true
	} else {
		p.Percent = float64(d.UsageProgress) / float64(d.MinRequests) * 100
		if p.Percent >= 100 {
			p.Percent = 100
			p.Reached = true
		} else {
			p.Remaining = d.MinRequests - d.UsageProgress
		}
	}
	if d.MaxRequests != nil && d.UsageProgress > *d.MaxRequests {
		p.Exceeded = true
	}
	return p
}
