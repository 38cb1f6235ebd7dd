package render

import "math"

// RadiusScale maps traffic to a radius with area proportional to traffic:
// a square-root scale over [0, maxTraffic] onto [Min, Max].
type RadiusScale struct {
	MaxTraffic int
	Min        float64
	Max        float64
}

// Radius returns the marker radius for traffic. With no traffic anywhere
// every marker gets Min.
func (s RadiusScale) Radius(traffic int) float64 {
	if s.MaxTraffic <= 0 || traffic <= 0 {
		return s.Min
	}
	t := math.Sqrt(float64(traffic)) / math.Sqrt(float64(s.MaxTraffic))
	return s.Min + (s.Max-s.Min)*t
}

// flowSteps are the colour mix stops: all arrivals, balanced, all departures.
var flowSteps = []float64{0, 0.5, 1}

// FlowRatio quantizes departures/total into flowSteps by splitting [0,1]
// into equal thirds. Stations without traffic are balanced.
func FlowRatio(departures, total int) float64 {
	if total <= 0 {
		return 0.5
	}
	r := float64(departures) / float64(total)
	n := len(flowSteps)
	i := int(math.Floor(r * float64(n)))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return flowSteps[i]
}
