package services

// Availability computes the percentage of students a literature record
// can serve. An electronic copy covers everyone. Printed copies are
// assumed to rotate between copyRatio students each, so coverage is
// printed*copyRatio out of the student body, floored and capped at 100.
func Availability(printed int, hasFile bool, students int, copyRatio int) int {
	if hasFile {
		return 100
	}
	if students < 1 {
		students = 1
	}
	pct := printed * copyRatio * 100 / students
	if pct > 100 {
		pct = 100
	}
	return pct
}
