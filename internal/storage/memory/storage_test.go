package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	domainErrors "github.com/polkiloo/manafood/internal/domain/errors"
	"github.com/polkiloo/manafood/internal/domain/model"
	"github.com/polkiloo/manafood/internal/domain/repository"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	storage := New(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	storage.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local) }
	return storage
}

func sampleDraft(restaurant string) model.OrderDraft {
	return model.OrderDraft{
		RestaurantID:   restaurant,
		RestaurantName: "Spice Hub",
		Items: []model.OrderItem{
			{ID: "I1", Name: "Biryani", Price: 180, Quantity: 2},
			{ID: "I2", Name: "Lassi", Price: 40, Quantity: 1},
		},
		Total:         400,
		CustomerName:  "Asha",
		CustomerPhone: "9999999999",
		Address:       "MGM Road",
	}
}

func TestRepositoryFactory(t *testing.T) {
	storage := newTestStorage(t)
	if _, ok := storage.Orders().(*orderRepository); !ok {
		t.Fatalf("unexpected order repo type")
	}
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	repo := newTestStorage(t).Orders()

	for i := 0; i < 5; i++ {
		order, err := repo.Append(context.Background(), sampleDraft("R1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := fmt.Sprintf("MF%d", 1000+i)
		if order.ID != want {
			t.Fatalf("expected id %s, got %s", want, order.ID)
		}
		if order.Status != model.OrderStatusPending {
			t.Fatalf("expected pending status, got %s", order.Status)
		}
		if order.CreatedAt.IsZero() {
			t.Fatal("expected creation time to be set")
		}
	}
}

func TestAppendCopiesDraftFields(t *testing.T) {
	repo := newTestStorage(t).Orders()
	url := "https://maps.example/abc"
	draft := sampleDraft("R7")
	draft.LocationURL = &url

	order, err := repo.Append(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.RestaurantID != "R7" || order.RestaurantName != "Spice Hub" || order.Total != 400 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.CustomerName != "Asha" || order.CustomerPhone != "9999999999" || order.Address != "MGM Road" {
		t.Fatalf("unexpected customer fields: %+v", order)
	}
	if order.LocationURL == nil || *order.LocationURL != url {
		t.Fatalf("expected location url %q, got %v", url, order.LocationURL)
	}
	if len(order.Items) != 2 || order.Items[0].Name != "Biryani" || order.Items[1].Name != "Lassi" {
		t.Fatalf("expected items in submitted order, got %+v", order.Items)
	}

	draft.Items[0].Name = "mutated"
	stored, err := repo.GetByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Items[0].Name != "Biryani" {
		t.Fatalf("stored items must not alias the draft, got %q", stored.Items[0].Name)
	}
}

func TestAppendKeepsEmptyItems(t *testing.T) {
	repo := newTestStorage(t).Orders()
	draft := sampleDraft("R1")
	draft.Items = []model.OrderItem{}

	order, err := repo.Append(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Items == nil || len(order.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", order.Items)
	}
}

func TestAppendRejectsCancelledContext(t *testing.T) {
	storage := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := storage.Orders().Append(ctx, sampleDraft("R1")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled error, got %v", err)
	}
	if storage.Len() != 0 {
		t.Fatalf("expected nothing stored, got %d", storage.Len())
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := newTestStorage(t).Orders()

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}

	for _, r := range []string{"R1", "R2", "R3"} {
		if _, err := repo.Append(context.Background(), sampleDraft(r)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err = repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(list))
	}
	for i, r := range []string{"R1", "R2", "R3"} {
		if list[i].RestaurantID != r {
			t.Fatalf("expected %s at %d, got %s", r, i, list[i].RestaurantID)
		}
	}

	list[0].RestaurantID = "changed"
	again, _ := repo.List(context.Background())
	if again[0].RestaurantID != "R1" {
		t.Fatalf("list must return a copy, got %s", again[0].RestaurantID)
	}
}

func TestGetByID(t *testing.T) {
	repo := newTestStorage(t).Orders()
	created, _ := repo.Append(context.Background(), sampleDraft("R1"))

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, got.ID)
	}

	if _, err := repo.GetByID(context.Background(), "MF9999"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAppendConcurrentIDsAreUnique(t *testing.T) {
	storage := newTestStorage(t)
	repo := storage.Orders()

	const n = 64
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := repo.Append(context.Background(), sampleDraft("R1"))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			ids <- order.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != n || storage.Len() != n {
		t.Fatalf("expected %d orders, got ids=%d stored=%d", n, len(seen), storage.Len())
	}
	for i := 0; i < n; i++ {
		if _, ok := seen[formatOrderID(i)]; !ok {
			t.Fatalf("missing id %s", formatOrderID(i))
		}
	}
}

func TestStorageClose(t *testing.T) {
	storage := newTestStorage(t)
	_, _ = storage.Orders().Append(context.Background(), sampleDraft("R1"))
	storage.Close()
	if storage.Len() != 0 {
		t.Fatalf("expected empty storage after close, got %d", storage.Len())
	}

	order, _ := storage.Orders().Append(context.Background(), sampleDraft("R1"))
	if order.ID != "MF1000" {
		t.Fatalf("expected counter to restart at MF1000, got %s", order.ID)
	}
}

func TestModuleClearsStorageOnStop(t *testing.T) {
	var (
		storage *Storage
		repo    repository.OrderRepository
	)
	app := fxtest.New(t,
		fx.Supply(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		Module,
		fx.Populate(&storage, &repo),
	)
	app.RequireStart()

	if _, err := repo.Append(context.Background(), sampleDraft("R1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storage.Len() != 1 {
		t.Fatalf("expected repository to share storage, got %d orders", storage.Len())
	}

	app.RequireStop()
	if storage.Len() != 0 {
		t.Fatalf("expected storage cleared on stop, got %d", storage.Len())
	}
}
