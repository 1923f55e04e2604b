package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return ls
}

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSaveFileWithPathStoresUnderSubdirectory(t *testing.T) {
	ls := newTestStorage(t)

	stored, err := ls.SaveFileWithPath(uploadHeader(t, "book.pdf", "content"), "literatures")
	if err != nil {
		t.Fatalf("SaveFileWithPath: %v", err)
	}

	if !strings.HasPrefix(stored, "literatures/") {
		t.Errorf("stored path %q not under literatures/", stored)
	}
	if filepath.Ext(stored) != ".pdf" {
		t.Errorf("stored path %q lost the extension", stored)
	}

	data, err := os.ReadFile(ls.GetFullPath(stored))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("stored content = %q, want %q", data, "content")
	}
}

func TestSaveFileNilHeaderIsNoop(t *testing.T) {
	ls := newTestStorage(t)

	stored, err := ls.SaveFile(nil)
	if err != nil {
		t.Fatalf("SaveFile(nil): %v", err)
	}
	if stored != "" {
		t.Errorf("stored = %q, want empty", stored)
	}
}

func TestSaveFileGeneratesUniqueNames(t *testing.T) {
	ls := newTestStorage(t)

	first, err := ls.SaveFile(uploadHeader(t, "same.txt", "a"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := ls.SaveFile(uploadHeader(t, "same.txt", "b"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first == second {
		t.Errorf("both uploads stored as %q", first)
	}
}

func TestDeleteFile(t *testing.T) {
	ls := newTestStorage(t)

	stored, err := ls.SaveFile(uploadHeader(t, "gone.txt", "x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := ls.DeleteFile(stored); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(ls.GetFullPath(stored)); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}

	// Deleting again is not an error.
	if err := ls.DeleteFile(stored); err != nil {
		t.Errorf("DeleteFile on missing file: %v", err)
	}
}

func TestGetFullPathRejectsEscapes(t *testing.T) {
	ls := newTestStorage(t)

	tests := []string{
		"../outside.txt",
		"sub/../../outside.txt",
		"/etc/passwd",
		"",
		".",
	}
	for _, path := range tests {
		if got := ls.GetFullPath(path); got != "" {
			t.Errorf("GetFullPath(%q) = %q, want empty", path, got)
		}
	}
}
