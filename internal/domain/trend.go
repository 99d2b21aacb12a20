package domain

import "math"

// HoursPerDay is the number of buckets produced by AggregateByHour.
const HoursPerDay = 24

// PricePoint is one chart-ready bucket of the price-by-departure-hour trend.
type PricePoint struct {
	// Hour is the local outbound departure hour, 0-23
	Hour int `json:"hour"`

	// MinPrice is the lowest offer price seen in this hour, or nil when no
	// offer departed in this hour
	MinPrice *float64 `json:"minPrice"`

	// Count is the number of offers departing in this hour
	Count int `json:"count"`
}

// AggregateByHour buckets offers by outbound local departure hour and
// computes the minimum price and offer count per hour.
//
// It always returns exactly 24 points, hours 0..23 in ascending order,
// regardless of input size (including empty input). Offers whose outbound
// DepartLocalHour is nil or outside 0..23 contribute to no bucket. Inbound
// timing never participates.
func AggregateByHour(offers []Offer) []PricePoint {
	mins := [HoursPerDay]float64{}
	counts := [HoursPerDay]int{}
	for h := range mins {
		mins[h] = math.Inf(1)
	}

	for _, o := range offers {
		hour := o.Outbound.DepartLocalHour
		if hour == nil || *hour < 0 || *hour >= HoursPerDay {
			continue
		}
		counts[*hour]++
		if o.Price.Amount < mins[*hour] {
			mins[*hour] = o.Price.Amount
		}
	}

	points := make([]PricePoint, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		point := PricePoint{Hour: h, Count: counts[h]}
		if counts[h] > 0 {
			min := mins[h]
			point.MinPrice = &min
		}
		points[h] = point
	}

	return points
}
