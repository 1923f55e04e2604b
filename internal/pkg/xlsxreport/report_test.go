package xlsxreport

import (
	"reflect"
	"testing"
)

func row(number, subject, title string) Row {
	return Row{
		DirectionNumber: number,
		DirectionName:   "dir " + number,
		Course:          1,
		StudentCount:    30,
		SubjectName:     subject,
		LiteratureTitle: title,
	}
}

func TestMergeRuns(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want [][2]int
	}{
		{
			name: "empty",
			rows: nil,
			want: [][2]int{},
		},
		{
			name: "single row",
			rows: []Row{row("1", "math", "a")},
			want: [][2]int{{0, 1}},
		},
		{
			name: "one subject many literatures",
			rows: []Row{
				row("1", "math", "a"),
				row("1", "math", "b"),
				row("1", "math", "c"),
			},
			want: [][2]int{{0, 3}},
		},
		{
			name: "subject change splits the run",
			rows: []Row{
				row("1", "math", "a"),
				row("1", "math", "b"),
				row("1", "physics", "c"),
			},
			want: [][2]int{{0, 2}, {2, 3}},
		},
		{
			name: "direction change splits the run",
			rows: []Row{
				row("1", "math", "a"),
				row("2", "math", "b"),
			},
			want: [][2]int{{0, 1}, {1, 2}},
		},
		{
			name: "student count change splits the run",
			rows: []Row{
				row("1", "math", "a"),
				{DirectionNumber: "1", DirectionName: "dir 1", Course: 1, StudentCount: 40, SubjectName: "math", LiteratureTitle: "b"},
			},
			want: [][2]int{{0, 1}, {1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeRuns(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeRuns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildWritesSheets(t *testing.T) {
	electronic := row("1", "math", "a")
	electronic.Kind = "textbook"
	electronic.Publisher = "Fan"
	electronic.Language = "uzbek"
	electronic.FontType = "latin"
	electronic.Year = 2020
	electronic.Electron = true
	electronic.Availability = 100

	sheets := []Sheet{
		{Name: "Nukus State University", Rows: []Row{
			electronic,
			row("1", "math", "b"),
		}},
		{Name: "Karakalpak State University"},
	}

	f, err := Build(sheets)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer f.Close()

	if got := f.SheetCount; got != 2 {
		t.Fatalf("SheetCount() = %d, want 2", got)
	}

	cells := map[string]string{
		"F2": "a",         // title
		"G2": "textbook",  // kind
		"I2": "Fan",       // publisher
		"J2": "uzbek",     // language
		"K2": "latin",     // font
		"L2": "2020",      // year
		"N2": "available", // electron marker
		"O2": "100",       // availability
		"N3": "",          // printed-only record has no marker
	}
	for cell, want := range cells {
		v, err := f.GetCellValue("Nukus State University", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", cell, err)
		}
		if v != want {
			t.Errorf("%s = %q, want %q", cell, v, want)
		}
	}

	// Empty sheet still carries the full header row.
	for cell, want := range map[string]string{"A1": "Direction number", "N1": "Electron", "O1": "Availability (%)"} {
		h, err := f.GetCellValue("Karakalpak State University", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", cell, err)
		}
		if h != want {
			t.Errorf("%s = %q, want %q", cell, h, want)
		}
	}
}

func TestSanitizeSheetName(t *testing.T) {
	if got := sanitizeSheetName("", 2); got != "Sheet3" {
		t.Errorf("sanitizeSheetName(empty) = %q, want Sheet3", got)
	}
	long := "University with a very long official name indeed"
	if got := sanitizeSheetName(long, 0); len([]rune(got)) != 31 {
		t.Errorf("sanitizeSheetName(long) length = %d, want 31", len([]rune(got)))
	}
}
