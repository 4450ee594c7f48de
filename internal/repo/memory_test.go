package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/yourname/upload_pipeline/internal/models"
)

func TestMemoryStore_ListNewestFirstWithLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i := 0; i < 5; i++ {
		err := s.Save(ctx, models.Upload{
			StoredName: fmt.Sprintf("id-%d-file.txt", i),
			Size:       int64(i),
			RelayedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := s.List(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"id-4-file.txt", "id-3-file.txt", "id-2-file.txt"} {
		if got[i].StoredName != want {
			t.Fatalf("got[%d] = %q, want %q", i, got[i].StoredName, want)
		}
	}

	all, _ := s.List(ctx, 0)
	if len(all) != 5 {
		t.Fatalf("unlimited list len = %d", len(all))
	}
}

func TestMemoryStore_SaveOverwritesSameName(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.Save(ctx, models.Upload{StoredName: "x", Size: 1})
	_ = s.Save(ctx, models.Upload{StoredName: "x", Size: 2})

	got, _ := s.List(ctx, 0)
	if len(got) != 1 || got[0].Size != 2 {
		t.Fatalf("unexpected journal state: %+v", got)
	}
}

func TestMemoryStore_RejectsEmptyName(t *testing.T) {
	if err := NewMemoryStore().Save(context.Background(), models.Upload{}); err == nil {
		t.Fatal("expected error for empty stored name")
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	for _, dsn := range []string{"", "memory://", "  memory://journal "} {
		s, err := Open(ctx, dsn)
		if err != nil {
			t.Fatalf("open %q: %v", dsn, err)
		}
		if _, ok := s.(*MemoryStore); !ok {
			t.Fatalf("open %q: got %T, want *MemoryStore", dsn, s)
		}
	}

	if _, err := Open(ctx, "mysql://nope"); err == nil {
		t.Fatal("expected error for unsupported dsn")
	}

	if !IsPostgres("postgresql://u@h/db") || IsPostgres("memory://") {
		t.Fatal("IsPostgres misclassifies dsn")
	}
}
