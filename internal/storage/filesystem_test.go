package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "proj1-1.jpg", want: "proj1-1.jpg"},
		{key: "/nested/a.png", want: "nested/a.png"},
		{key: "./x/../y.png", want: "y.png"},
		{key: `dir\file.png`, want: "dir/file.png"},
		{key: "../etc/passwd", wantErr: true},
		{key: "..", wantErr: true},
		{key: "  ", wantErr: true},
	}
	for _, tc := range tests {
		got, err := sanitizeKey(tc.key)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("sanitizeKey(%q) expected error, got %q", tc.key, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("sanitizeKey(%q) unexpected error: %v", tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("sanitizeKey(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestFileStoreOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "proj1-1.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	f, info, err := store.Open(context.Background(), "/proj1-1.jpg")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	f.Close()
	if info.Size() != 4 {
		t.Fatalf("size = %d, want 4", info.Size())
	}

	if _, _, err := store.Open(context.Background(), "missing.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.Open(context.Background(), "sub"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for directory, got %v", err)
	}
}

func TestFileStoreHandler(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "proj1-1.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	h := store.Handler("/assets/")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/proj1-1.jpg", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "jpeg" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/nope.jpg", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
