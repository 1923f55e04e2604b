package services

import (
	"reflect"
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Admission  ", "admission"},
		{"SPORT", "sport"},
		{"tanlov", "tanlov"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTagsDedupes(t *testing.T) {
	got := normalizeTags([]string{"Sport", " sport ", "", "News", "SPORT"})
	want := []string{"sport", "news"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeTags() = %v, want %v", got, want)
	}
}
