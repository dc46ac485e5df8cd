package wisard

import "github.com/neurlang/wisard/inference"

// bleachEpsilon is the response below which bleaching is considered to have erased all signal.
const bleachEpsilon = 1e-6

// activation returns for each label the fraction of memories whose counter exceeds b.
func activation(raw map[string][]int, b int) inference.Response {
	var r = make(inference.Response, len(raw))
	for label, counters := range raw {
		var active int
		for _, v := range counters {
			if v > b {
				active++
			}
		}
		if len(counters) > 0 {
			r[label] = float64(active) / float64(len(counters))
		} else {
			r[label] = 0
		}
	}
	return r
}

// bleach raises the activation threshold from step while the confidence of the
// response stays below threshold. When a threshold leaves no label with any
// activated memory, the response of the previous threshold is kept.
func bleach(raw map[string][]int, step int, threshold float64) inference.Response {
	response := activation(raw, 0)
	for b := step; inference.Confidence(response) < threshold; b++ {
		next := activation(raw, b)
		if inference.MaxValue(next) < bleachEpsilon {
			break
		}
		response = next
	}
	return response
}
