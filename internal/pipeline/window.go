package pipeline

import "strings"

// Window returns the concatenation of the last min(k, len) outputs, joined
// with a blank line, order preserved. Bounding the window keeps prompt size
// (and cost) predictable at the price of long-range coherence. Pure function.
func Window(outputs []string, k int) string {
	if k <= 0 || len(outputs) == 0 {
		return ""
	}
	if len(outputs) > k {
		outputs = outputs[len(outputs)-k:]
	}
	return strings.Join(outputs, "\n\n")
}
