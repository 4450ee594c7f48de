package filesvc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

var storedNameRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}-`)

func newFiles(t *testing.T) *Files {
	t.Helper()
	s, err := New(Deps{Dir: filepath.Join(t.TempDir(), "data")})
	if err != nil {
		t.Fatalf("new files: %v", err)
	}
	return s
}

func TestNew_CreatesRoot(t *testing.T) {
	s := newFiles(t)

	fi, err := os.Stat(s.Root())
	if err != nil {
		t.Fatalf("root not created: %v", err)
	}
	if !fi.IsDir() {
		t.Fatalf("root is not a directory")
	}
}

func TestStore_ThenInfoReportsPayloadSize(t *testing.T) {
	s := newFiles(t)
	ctx := context.Background()

	for _, payload := range [][]byte{
		{},
		[]byte("0123456789"),
		bytes.Repeat([]byte{0xFE, 0x00}, 64<<10),
	} {
		res, err := s.Store(ctx, "blob.bin", "application/octet-stream", bytes.NewReader(payload))
		if err != nil {
			t.Fatalf("store: %v", err)
		}
		if res.Size != int64(len(payload)) {
			t.Fatalf("store size = %d, want %d", res.Size, len(payload))
		}

		info, err := s.Info(ctx, res.Name)
		if err != nil {
			t.Fatalf("info: %v", err)
		}
		if info.Size != int64(len(payload)) {
			t.Fatalf("info size = %d, want %d", info.Size, len(payload))
		}
		if info.Filename != res.Name {
			t.Fatalf("info filename = %q, want %q", info.Filename, res.Name)
		}
		if info.Path != filepath.Join(s.Root(), res.Name) {
			t.Fatalf("info path = %q", info.Path)
		}
	}
}

func TestStore_NameFormat(t *testing.T) {
	s := newFiles(t)

	for _, name := range []string{"a.txt", "report 2024 (final).pdf", "-dash-", "без имени.txt"} {
		res, err := s.Store(context.Background(), name, "text/plain", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("store %q: %v", name, err)
		}
		if !storedNameRe.MatchString(res.Name) {
			t.Fatalf("stored name %q lacks uuid prefix", res.Name)
		}
		if len(res.Name) != 37+len(name) || !strings.HasSuffix(res.Name, name) {
			t.Fatalf("stored name %q must end with %q", res.Name, name)
		}
		if res.OriginalFilename != name || res.ContentType != "text/plain" {
			t.Fatalf("unexpected echo: %+v", res)
		}
	}
}

func TestStore_NotIdempotent(t *testing.T) {
	s := newFiles(t)
	ctx := context.Background()

	first, err := s.Store(ctx, "same.txt", "text/plain", strings.NewReader("same"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Store(ctx, "same.txt", "text/plain", strings.NewReader("same"))
	if err != nil {
		t.Fatal(err)
	}

	if first.Name == second.Name {
		t.Fatalf("expected distinct stored names, got %q twice", first.Name)
	}

	listing, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if listing.Count != 2 || len(listing.Files) != 2 {
		t.Fatalf("expected two files on disk, got %+v", listing)
	}
}

func TestStore_RejectsUnsafeNames(t *testing.T) {
	s := newFiles(t)

	for _, name := range []string{"", ".", "..", "../escape.txt", "dir/file.txt", `..\win.txt`} {
		_, err := s.Store(context.Background(), name, "", strings.NewReader("x"))
		if !errors.Is(err, models.ErrInvalidName) {
			t.Fatalf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}

	listing, err := s.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if listing.Count != 0 {
		t.Fatalf("rejected names must not create files: %v", listing.Files)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestStore_FailedWriteLeavesNoFile(t *testing.T) {
	s := newFiles(t)

	_, err := s.Store(context.Background(), "broken.bin", "", failingReader{})
	if !errors.Is(err, models.ErrIOFault) {
		t.Fatalf("expected io fault, got %v", err)
	}
	var fault *models.FaultError
	if !errors.As(err, &fault) || fault.Op != "write file" {
		t.Fatalf("expected write fault, got %#v", err)
	}

	listing, _ := s.List(context.Background())
	if listing.Count != 0 {
		t.Fatalf("partial file left behind: %v", listing.Files)
	}
}

func TestInfo_UnknownIsNotFound(t *testing.T) {
	s := newFiles(t)

	for _, name := range []string{"never-stored.txt", "..", "../etc/passwd", ""} {
		_, err := s.Info(context.Background(), name)
		if !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("name %q: expected ErrNotFound, got %v", name, err)
		}
		if errors.Is(err, models.ErrIOFault) {
			t.Fatalf("name %q: not-found must not be an io fault", name)
		}
	}
}

func TestList_FaultWhenRootMissing(t *testing.T) {
	s := newFiles(t)
	if err := os.RemoveAll(s.Root()); err != nil {
		t.Fatal(err)
	}

	_, err := s.List(context.Background())
	if !errors.Is(err, models.ErrIOFault) {
		t.Fatalf("expected io fault, got %v", err)
	}
}

func TestProbe_LeavesNothingBehind(t *testing.T) {
	s := newFiles(t)

	if err := s.Probe(context.Background()); err != nil {
		t.Fatalf("probe: %v", err)
	}

	entries, err := os.ReadDir(s.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("probe left %d entries", len(entries))
	}
}

func TestProbe_FailsWhenRootMissing(t *testing.T) {
	s := newFiles(t)
	if err := os.RemoveAll(s.Root()); err != nil {
		t.Fatal(err)
	}

	err := s.Probe(context.Background())
	if !errors.Is(err, models.ErrIOFault) {
		t.Fatalf("expected io fault, got %v", err)
	}
}

func TestSweepProbes_RemovesOnlyStaleProbeFiles(t *testing.T) {
	s := newFiles(t)
	ctx := context.Background()

	kept, err := s.Store(ctx, "keep.txt", "text/plain", strings.NewReader("keep"))
	if err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(s.Root(), storageproto.ProbePrefix+"stale")
	fresh := filepath.Join(s.Root(), storageproto.ProbePrefix+"fresh")
	for _, p := range []string{stale, fresh} {
		if err := os.WriteFile(p, probePayload, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatal(err)
	}
	// сохранённый файл тоже «старый», но его трогать нельзя
	if err := os.Chtimes(filepath.Join(s.Root(), kept.Name), old, old); err != nil {
		t.Fatal(err)
	}

	n, err := s.SweepProbes(ctx, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("removed %d files, want 1", n)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("stale probe not removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh probe removed: %v", err)
	}
	if _, err := s.Info(ctx, kept.Name); err != nil {
		t.Fatalf("stored file touched by sweep: %v", err)
	}
}
