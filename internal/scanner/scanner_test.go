package scanner

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

const listingPath = "tmp/listings.csv"

func listingFS(content string) fs.FS {
	return fstest.MapFS{
		listingPath: &fstest.MapFile{Data: []byte(content)},
	}
}

func TestScanFindsWeakLocation(t *testing.T) {
	fsys := listingFS("Madrid,strong\nLas Vegas,weak\nNew York,strong\n")
	weak, known := New(fsys, listingPath).Scan()
	if !known {
		t.Fatal("scan reported unknown for a readable listing")
	}
	if !weak {
		t.Fatal("scan missed the weak location")
	}
}

func TestScanReportsAllStrong(t *testing.T) {
	fsys := listingFS("Madrid,strong\nOregon,strong\nNew York,strong\n")
	weak, known := New(fsys, listingPath).Scan()
	if !known {
		t.Fatal("scan reported unknown for a readable listing")
	}
	if weak {
		t.Fatal("scan invented a weak location")
	}
}

func TestScanEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantWeak  bool
		wantKnown bool
	}{
		{name: "empty listing", content: "", wantWeak: false, wantKnown: true},
		{name: "weak only as suffix", content: "weakling,strong\nweak point here,strong\n", wantWeak: false, wantKnown: true},
		{name: "weak on last line without newline", content: "Madrid,strong\nLas Vegas,weak", wantWeak: true, wantKnown: true},
		{name: "bare weak line", content: "weak\n", wantWeak: true, wantKnown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weak, known := New(listingFS(tt.content), listingPath).Scan()
			if weak != tt.wantWeak || known != tt.wantKnown {
				t.Fatalf("Scan() = (%t, %t), want (%t, %t)",
					weak, known, tt.wantWeak, tt.wantKnown)
			}
		})
	}
}

func TestScanWithMissingListingIsUnknown(t *testing.T) {
	weak, known := New(fstest.MapFS{}, listingPath).Scan()
	if known {
		t.Fatal("scan reported a known result for a missing listing")
	}
	if weak {
		t.Fatal("scan reported weak without a listing")
	}
}

func TestScanWithUnreadableListingIsUnknown(t *testing.T) {
	weak, known := New(failingReadFS{}, listingPath).Scan()
	if known {
		t.Fatal("scan reported a known result for an unreadable listing")
	}
	if weak {
		t.Fatal("scan reported weak without reading the listing")
	}
}

// failingReadFS opens files successfully but fails every read.
type failingReadFS struct{}

func (failingReadFS) Open(string) (fs.File, error) { return failingFile{}, nil }

type failingFile struct{}

func (failingFile) Stat() (fs.FileInfo, error) { return nil, errors.New("stat unsupported") }
func (failingFile) Read([]byte) (int, error)   { return 0, errors.New("read failed") }
func (failingFile) Close() error               { return nil }
