package sim

import (
	"math"
	"testing"
)

func TestUniformGrid(t *testing.T) {
	grid, err := UniformGrid(0, 50, 501)
	if err != nil {
		t.Fatalf("UniformGrid failed: %v", err)
	}

	if len(grid) != 501 {
		t.Errorf("expected 501 points, got %d", len(grid))
	}
	if grid[0] != 0 {
		t.Errorf("expected start 0, got %g", grid[0])
	}
	if grid[len(grid)-1] != 50 {
		t.Errorf("expected end 50, got %g", grid[len(grid)-1])
	}
	if math.Abs(grid[1]-grid[0]-0.1) > 1e-12 {
		t.Errorf("expected spacing 0.1, got %g", grid[1]-grid[0])
	}
}

func TestUniformGrid_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		end     float64
		samples int
	}{
		{"one sample", 0, 10, 1},
		{"zero samples", 0, 10, 0},
		{"end before start", 10, 0, 5},
		{"zero span", 1, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UniformGrid(tt.start, tt.end, tt.samples); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCheckGrid(t *testing.T) {
	tests := []struct {
		name string
		grid []float64
		ok   bool
	}{
		{"single point", []float64{0}, true},
		{"increasing", []float64{0, 1, 2.5, 7}, true},
		{"empty", []float64{}, false},
		{"repeated point", []float64{0, 1, 1, 2}, false},
		{"decreasing", []float64{0, 2, 1}, false},
		{"NaN point", []float64{0, math.NaN(), 2}, false},
		{"Inf point", []float64{0, math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGrid(tt.grid)
			if tt.ok && err != nil {
				t.Errorf("expected valid grid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
