// Package inference implements the response map helpers of the WiSARD classifier
package inference

// Response maps each class label to its score for one retina.
type Response map[string]float64

// top2 returns the highest and the second highest score. Ties at the top
// count as the second highest too.
func top2(r Response) (first, second float64) {
	for _, v := range r {
		if v > first {
			second = first
			first = v
		} else if v > second {
			second = v
		}
	}
	return
}

// Confidence returns 1 - second/highest. A response whose highest score is 0
// has no confidence.
func Confidence(r Response) float64 {
	first, second := top2(r)
	if first <= 0 {
		return 0
	}
	return 1 - second/first
}

// MaxValue returns the highest score, or 0 for an empty response.
func MaxValue(r Response) float64 {
	first, _ := top2(r)
	return first
}

// ArgMax returns the label with the highest score. Among equal scores the
// lexicographically smallest label wins, so the result doesn't depend on map order.
func ArgMax(r Response) (label string) {
	var found bool
	var max float64
	for k, v := range r {
		if !found || v > max || (v == max && k < label) {
			found = true
			max = v
			label = k
		}
	}
	return
}
