package catalog

import (
	"strings"
	"testing"
	"testing/quick"

	"golang.org/x/text/cases"

	"github.com/techbucket/techbucket-web/internal/content"
	"github.com/techbucket/techbucket-web/internal/domain"
)

func products(t *testing.T) []domain.PublicProduct {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	return c.Products
}

func names(ps []domain.PublicProduct) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	all := products(t)
	tests := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{name: "brand", category: "Dell", want: []string{"Dell PowerEdge R750", "Dell Networking N3248TE-ON"}},
		{name: "type", category: "Wireless", want: []string{"Cisco Meraki MR46"}},
		{name: "brand and query", category: "HP", query: "aruba", want: []string{"HP Aruba 6300M Series"}},
		{name: "query in description", category: All, query: "WI-FI 6", want: []string{"Cisco Meraki MR46"}},
		{name: "no match", category: "Servers", query: "meraki", want: []string{}},
		{name: "query is not trimmed", category: All, query: " r750 ", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(all, tt.category, tt.query))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterAllEmptyQueryIsIdentity(t *testing.T) {
	all := products(t)
	got := Filter(all, All, "")
	if len(got) != len(all) {
		t.Fatalf("got %d items, want %d", len(got), len(all))
	}
	for i := range all {
		if got[i].ID != all[i].ID {
			t.Fatalf("order changed at %d", i)
		}
	}
	if len(Filter(all, "", "")) != len(all) {
		t.Error("empty category behaves as All")
	}
}

func TestFilterQueryProperty(t *testing.T) {
	all := products(t)
	prop := func(q string) bool {
		got := Filter(all, All, q)
		fold := cases.Fold()
		lq := fold.String(q)
		j := 0
		for _, p := range all {
			match := q == "" ||
				strings.Contains(fold.String(p.Name), lq) ||
				strings.Contains(fold.String(p.Description), lq)
			if !match {
				continue
			}
			if j >= len(got) || got[j].ID != p.ID {
				return false
			}
			j++
		}
		return j == len(got)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
	for _, q := range []string{"series", "SWITCH", "server", "x"} {
		if !prop(q) {
			t.Errorf("property failed for %q", q)
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter([]domain.PublicProduct(nil), All, "")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

type namedItem string

func (n namedItem) FilterName() string        { return string(n) }
func (n namedItem) FilterDescription() string { return "" }
func (n namedItem) FilterCategory() string    { return "" }
func (n namedItem) FilterType() string        { return "" }

func TestFilterCaseFolding(t *testing.T) {
	items := []namedItem{"Straße Router", "Edge Switch"}
	got := Filter(items, All, "STRASSE")
	if len(got) != 1 || got[0] != "Straße Router" {
		t.Errorf("folded query matched %v", got)
	}
	if got := Filter(items, All, "edge switch"); len(got) != 1 {
		t.Errorf("lower case query matched %v", got)
	}
}
