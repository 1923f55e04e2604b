package services

import "testing"

func TestAvailability(t *testing.T) {
	tests := []struct {
		name      string
		printed   int
		hasFile   bool
		students  int
		copyRatio int
		want      int
	}{
		{name: "no copies no file", printed: 0, students: 30, copyRatio: 6, want: 0},
		{name: "enough copies for everyone", printed: 5, students: 30, copyRatio: 6, want: 100},
		{name: "single copy covers a fifth", printed: 1, students: 30, copyRatio: 6, want: 20},
		{name: "electronic copy always full", printed: 0, hasFile: true, students: 30, copyRatio: 6, want: 100},
		{name: "capped at one hundred", printed: 50, students: 30, copyRatio: 6, want: 100},
		{name: "zero students treated as one", printed: 1, students: 0, copyRatio: 6, want: 100},
		{name: "fraction floors", printed: 1, students: 7, copyRatio: 6, want: 85},
		{name: "custom ratio", printed: 1, students: 30, copyRatio: 3, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Availability(tt.printed, tt.hasFile, tt.students, tt.copyRatio)
			if got != tt.want {
				t.Errorf("Availability(%d, %v, %d, %d) = %d, want %d",
					tt.printed, tt.hasFile, tt.students, tt.copyRatio, got, tt.want)
			}
		})
	}
}
