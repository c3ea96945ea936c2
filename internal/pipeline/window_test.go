package pipeline

import "testing"

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		outputs []string
		k       int
		want    string
	}{
		{"empty", nil, 3, ""},
		{"fewer than k", []string{"A", "B"}, 3, "A\n\nB"},
		{"exactly k", []string{"A", "B", "C"}, 3, "A\n\nB\n\nC"},
		{"more than k drops oldest", []string{"A", "B", "C", "D"}, 3, "B\n\nC\n\nD"},
		{"k of one", []string{"A", "B", "C"}, 1, "C"},
		{"zero k", []string{"A"}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Window(tt.outputs, tt.k); got != tt.want {
				t.Errorf("Window(%v, %d) = %q, want %q", tt.outputs, tt.k, got, tt.want)
			}
		})
	}
}

func TestWindowDoesNotMutateInput(t *testing.T) {
	outputs := []string{"A", "B", "C", "D"}
	_ = Window(outputs, 2)
	if outputs[0] != "A" || len(outputs) != 4 {
		t.Errorf("input mutated: %v", outputs)
	}
}
