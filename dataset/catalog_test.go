package dataset_test

import (
	"errors"
	"testing"

	"github.com/landecol/landstats/dataset"
)

func TestGet(t *testing.T) {
	d, err := dataset.Get("ESA/WorldCover/v200")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.CellSize != 10 {
		t.Errorf("CellSize = %v; want 10", d.CellSize)
	}
	if got := d.Classes[10]; got != "Tree cover" {
		t.Errorf("Classes[10] = %q; want Tree cover", got)
	}

	if _, err := dataset.Get("BOGUS/ID"); !errors.Is(err, dataset.ErrUnknownDataset) {
		t.Errorf("Get(bogus) error = %v; want ErrUnknownDataset", err)
	}
}

func TestList(t *testing.T) {
	all := dataset.List("")
	if len(all) < 3 {
		t.Fatalf("List(\"\") = %d entries; want ≥ 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("List not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}
	lc := dataset.List(dataset.LandCover)
	if len(lc) != len(all) {
		t.Errorf("landcover filter = %d entries; want %d (all entries are landcover)", len(lc), len(all))
	}
}

func TestClassCodes(t *testing.T) {
	d, err := dataset.Get("MODIS/061/MCD12Q1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	codes := d.ClassCodes()
	if len(codes) != 17 {
		t.Fatalf("ClassCodes = %d; want 17", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("ClassCodes not sorted at %d", i)
		}
	}
	// Every class must have a palette entry for class-map export.
	for _, c := range codes {
		if _, ok := d.Palette[c]; !ok {
			t.Errorf("class %d missing palette color", c)
		}
	}
}
