package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"
	"time"

	"brandstudio/internal/domain"
)

// memBrandRepo mirrors the gateway contract in memory, including the
// normalize-on-read boundary.
type memBrandRepo struct {
	brand *domain.BrandProfile
}

func (m *memBrandRepo) Save(ctx context.Context, brand *domain.BrandProfile) error {
	copied := *brand
	m.brand = &copied
	return nil
}

func (m *memBrandRepo) Get(ctx context.Context) (*domain.BrandProfile, error) {
	if m.brand == nil {
		return nil, nil
	}
	copied := *m.brand
	copied.SavedStyles = domain.NormalizeStyles(copied.SavedStyles)
	return &copied, nil
}

func (m *memBrandRepo) Clear(ctx context.Context) error {
	m.brand = nil
	return nil
}

type memArtRepo struct {
	arts map[string]domain.GeneratedArt
}

func newMemArtRepo() *memArtRepo {
	return &memArtRepo{arts: map[string]domain.GeneratedArt{}}
}

func (m *memArtRepo) Save(ctx context.Context, art *domain.GeneratedArt) error {
	m.arts[art.ID] = *art
	if len(m.arts) > domain.HistoryLimit {
		all, _ := m.List(ctx)
		for _, old := range all[domain.HistoryLimit:] {
			delete(m.arts, old.ID)
		}
	}
	return nil
}

func (m *memArtRepo) List(ctx context.Context) ([]domain.GeneratedArt, error) {
	var all []domain.GeneratedArt
	for _, art := range m.arts {
		all = append(all, art)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp > all[j].Timestamp })
	return all, nil
}

func (m *memArtRepo) Delete(ctx context.Context, id string) error {
	delete(m.arts, id)
	return nil
}

func (m *memArtRepo) Clear(ctx context.Context) error {
	m.arts = map[string]domain.GeneratedArt{}
	return nil
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.UnixMilli(1700000000000) }
}

func TestExportImportRoundTrip(t *testing.T) {
	brands := &memBrandRepo{}
	arts := newMemArtRepo()
	svc := NewService(brands, arts, Options{Now: fixedClock()})
	ctx := context.Background()

	original := &domain.BrandProfile{
		Name:              "Jana's Cakes",
		Logo:              "data:image/png;base64,QUJD",
		Summary:           "artisanal confectionery",
		Colors:            []string{"#8B4513", "#FFD700"},
		Typography:        "elegant serif",
		VisualStyle:       "rustic luxury",
		ExpertReferences:  []string{"data:image/png;base64,AAAA"},
		ProductReferences: []string{"data:image/png;base64,BBBB"},
		References:        []string{},
		Gallery:           []string{},
		SavedStyles: []domain.VisualStyle{
			{ID: "s1", Name: "Vintage", Image: "data:image/png;base64,CCCC"},
		},
	}
	if err := brands.Save(ctx, original); err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	for i, art := range []domain.GeneratedArt{
		{ID: "a1", URLs: []string{"data:image/png;base64,X1"}, Prompt: "bolo", Description: "doce", Timestamp: 100},
		{ID: "a2", URLs: []string{"data:image/png;base64,X2"}, Prompt: "torta", Timestamp: 200, IsRejected: true, StyleName: "Vintage"},
	} {
		if err := arts.Save(ctx, &art); err != nil {
			t.Fatalf("seed art %d: %v", i, err)
		}
	}

	exported, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	// Wipe and restore into fresh repositories.
	restoredBrands := &memBrandRepo{}
	restoredArts := newMemArtRepo()
	restoreSvc := NewService(restoredBrands, restoredArts, Options{Now: fixedClock()})

	result, err := restoreSvc.Import(ctx, exported)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	gotBrand, _ := restoredBrands.Get(ctx)
	wantBrand, _ := brands.Get(ctx) // normalized view
	if !reflect.DeepEqual(gotBrand, wantBrand) {
		t.Fatalf("brand round trip mismatch:\ngot  %+v\nwant %+v", gotBrand, wantBrand)
	}
	// Normalization populated Images from the legacy field.
	if imgs := gotBrand.SavedStyles[0].Images; len(imgs) != 1 || imgs[0] != "data:image/png;base64,CCCC" {
		t.Fatalf("style not normalized: %+v", gotBrand.SavedStyles[0])
	}

	gotHistory, _ := restoredArts.List(ctx)
	wantHistory, _ := arts.List(ctx)
	if !reflect.DeepEqual(gotHistory, wantHistory) {
		t.Fatalf("history round trip mismatch:\ngot  %+v\nwant %+v", gotHistory, wantHistory)
	}
	// Caption and rejection flag survive the trip.
	if !gotHistory[0].IsRejected || gotHistory[1].Description != "doce" {
		t.Fatalf("history lost fields: %+v", gotHistory)
	}
	if len(result.History) != 2 || result.Brand == nil {
		t.Fatalf("returned state = %+v", result)
	}
}

func TestExportWithEmptyStore(t *testing.T) {
	svc := NewService(&memBrandRepo{}, newMemArtRepo(), Options{Now: fixedClock()})

	exported, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(exported, &envelope); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if envelope.Brand != nil {
		t.Fatalf("Brand = %+v, want null", envelope.Brand)
	}
	if envelope.History == nil || len(envelope.History) != 0 {
		t.Fatalf("History = %v, want empty list", envelope.History)
	}
	if envelope.ExportDate != 1700000000000 {
		t.Fatalf("ExportDate = %d", envelope.ExportDate)
	}
}

func TestImportMissingBrandLeavesStoreUnchanged(t *testing.T) {
	brands := &memBrandRepo{brand: &domain.BrandProfile{Name: "existing"}}
	arts := newMemArtRepo()
	arts.Save(context.Background(), &domain.GeneratedArt{ID: "keep", Timestamp: 1})
	svc := NewService(brands, arts, Options{})

	_, err := svc.Import(context.Background(), []byte(`{"history":[{"id":"new","timestamp":2}]}`))
	if !errors.Is(err, domain.ErrInvalidBackup) {
		t.Fatalf("err = %v, want ErrInvalidBackup", err)
	}

	if brands.brand.Name != "existing" {
		t.Fatalf("brand overwritten: %+v", brands.brand)
	}
	if _, ok := arts.arts["new"]; ok {
		t.Fatal("history entry written despite invalid backup")
	}
}

func TestImportMalformedJSON(t *testing.T) {
	svc := NewService(&memBrandRepo{}, newMemArtRepo(), Options{})
	_, err := svc.Import(context.Background(), []byte("not json at all"))
	if !errors.Is(err, domain.ErrInvalidBackup) {
		t.Fatalf("err = %v, want ErrInvalidBackup", err)
	}
}

func TestImportWithoutHistoryField(t *testing.T) {
	brands := &memBrandRepo{}
	svc := NewService(brands, newMemArtRepo(), Options{})

	result, err := svc.Import(context.Background(), []byte(`{"brand":{"name":"Solo"}}`))
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if result.Brand.Name != "Solo" || len(result.History) != 0 {
		t.Fatalf("result = %+v", result)
	}
	if brands.brand == nil || brands.brand.Name != "Solo" {
		t.Fatalf("brand not persisted: %+v", brands.brand)
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	arts := newMemArtRepo()
	ctx := context.Background()

	for i := 0; i < domain.HistoryLimit+1; i++ {
		art := domain.GeneratedArt{
			ID:        fmt.Sprintf("art-%03d", i),
			Timestamp: int64(i + 1),
		}
		if err := arts.Save(ctx, &art); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	all, _ := arts.List(ctx)
	if len(all) != domain.HistoryLimit {
		t.Fatalf("history = %d entries, want %d", len(all), domain.HistoryLimit)
	}
	if all[0].Timestamp != int64(domain.HistoryLimit+1) {
		t.Fatalf("newest timestamp = %d, want %d", all[0].Timestamp, domain.HistoryLimit+1)
	}
	// The very first entry (timestamp 1) was evicted.
	if all[len(all)-1].Timestamp != 2 {
		t.Fatalf("oldest surviving timestamp = %d, want 2", all[len(all)-1].Timestamp)
	}
}
