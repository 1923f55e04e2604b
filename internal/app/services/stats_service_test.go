package services

import "testing"

func TestPercentAccessible(t *testing.T) {
	tests := []struct {
		name        string
		literatures int64
		students    int64
		copyRatio   int
		want        float64
	}{
		{name: "no students", literatures: 10, students: 0, copyRatio: 6, want: 0},
		{name: "full coverage capped", literatures: 100, students: 30, copyRatio: 6, want: 100},
		{name: "partial coverage", literatures: 10, students: 600, copyRatio: 6, want: 10},
		{name: "two decimal places", literatures: 1, students: 7, copyRatio: 6, want: 85.71},
		{name: "no literature", literatures: 0, students: 500, copyRatio: 6, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentAccessible(tt.literatures, tt.students, tt.copyRatio)
			if got != tt.want {
				t.Errorf("percentAccessible(%d, %d, %d) = %v, want %v",
					tt.literatures, tt.students, tt.copyRatio, got, tt.want)
			}
		})
	}
}
