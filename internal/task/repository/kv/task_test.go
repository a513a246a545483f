package kv_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task/repository"
	"task-list-manager/internal/task/repository/kv"
	"task-list-manager/pkg/kvstore"
	"task-list-manager/pkg/log"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := kv.New(store, "", time.UTC, log.NewNop())

	want := []model.Task{
		{
			ID:          1704448800000,
			Title:       "Pay rent",
			Description: "",
			DueDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, 1, 5, 10, 0, 0, 123e6, time.UTC),
		},
		{
			ID:          1704448800001,
			Title:       "Call mom",
			Description: "Sunday call",
			DueDate:     time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			Completed:   true,
			CreatedAt:   time.Date(2024, 1, 5, 10, 0, 1, 0, time.UTC),
		},
	}

	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveUsesStorageLayout(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := kv.New(store, "tasks", time.UTC, log.NewNop())

	err := repo.Save(ctx, []model.Task{{
		ID:        42,
		Title:     "Pay rent",
		DueDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
	}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := store.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := `[{"id":42,"title":"Pay rent","description":"","dueDate":"2024-01-01","completed":false,"createdAt":"2024-01-05T10:00:00.000Z"}]`
	if string(raw) != want {
		t.Errorf("unexpected stored value:\n got %s\nwant %s", raw, want)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  string
		wantLen int
		wantErr error
	}{
		{name: "Missing slot", stored: "", wantLen: 0},
		{name: "Empty array", stored: `[]`, wantLen: 0},
		{name: "Null", stored: `null`, wantLen: 0},
		{name: "Corrupt JSON", stored: `[{"id":`, wantLen: 0, wantErr: repository.ErrCorruptData},
		{name: "Wrong shape", stored: `{"id":1}`, wantLen: 0, wantErr: repository.ErrCorruptData},
		{name: "Unvalidated record", stored: `[{"id":7,"title":"","dueDate":"not a date"}]`, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kvstore.NewMemory()
			if tt.stored != "" {
				store.Set(ctx, "tasks", []byte(tt.stored))
			}
			repo := kv.New(store, "tasks", time.UTC, log.NewNop())

			got, err := repo.Load(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got == nil {
				t.Fatal("expected non-nil collection")
			}
			if len(got) != tt.wantLen {
				t.Errorf("expected %d tasks, got %d", tt.wantLen, len(got))
			}
		})
	}
}

func TestLoadUnvalidatedRecordKeepsZeroDates(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	store.Set(ctx, "tasks", []byte(`[{"id":7,"title":"x","dueDate":"soon","createdAt":"yesterday"}]`))

	got, err := kv.New(store, "tasks", time.UTC, log.NewNop()).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got[0].DueDate.IsZero() || !got[0].CreatedAt.IsZero() {
		t.Errorf("expected zero dates, got %+v", got[0])
	}
}

func TestLoadRFC3339DueDate(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	store.Set(ctx, "tasks", []byte(`[{"id":1,"title":"x","dueDate":"2024-01-01T23:30:00Z"}]`))

	loc := time.FixedZone("UTC+7", 7*60*60)
	got, err := kv.New(store, "tasks", loc, log.NewNop()).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, loc)
	if !got[0].DueDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, got[0].DueDate)
	}
}

func TestStoreFailures(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	store.Close()
	repo := kv.New(store, "tasks", time.UTC, log.NewNop())

	if _, err := repo.Load(ctx); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("expected ErrFailedToLoad, got %v", err)
	}
	if err := repo.Save(ctx, nil); !errors.Is(err, repository.ErrFailedToSave) {
		t.Errorf("expected ErrFailedToSave, got %v", err)
	}
}

func TestSaveEmptyWritesArray(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := kv.New(store, "tasks", time.UTC, log.NewNop())

	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, _ := store.Get(ctx, "tasks")
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Errorf("expected [], got %s", raw)
	}
}
