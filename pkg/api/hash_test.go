package api

import (
	"testing"
	"time"
)

func sampleDoc() Document {
	return Document{
		ID:   "doc-1",
		Name: "profile",
		Elements: []Element{
			{ID: "e1", Kind: KindHeader, Text: "Hello", Level: 1},
			{ID: "e2", Kind: KindTechStack, Items: []string{"Go", "SQLite"}},
			{ID: "e3", Kind: KindTable, Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
		},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestHashDeterministic(t *testing.T) {
	d := sampleDoc()
	first := d.Hash()
	if first == "" {
		t.Fatal("empty hash")
	}
	if again := d.Hash(); again != first {
		t.Fatalf("hash not stable: %s vs %s", again, first)
	}
}

func TestHashIgnoresTimestampsAndID(t *testing.T) {
	a := sampleDoc()
	b := sampleDoc()
	b.ID = "doc-2"
	b.CreatedAt = b.CreatedAt.Add(48 * time.Hour)
	b.UpdatedAt = b.UpdatedAt.Add(48 * time.Hour)
	if a.Hash() != b.Hash() {
		t.Fatal("hash should ignore id and timestamps")
	}
}

func TestHashSensitiveToContent(t *testing.T) {
	a := sampleDoc()
	b := sampleDoc()
	b.Elements[1].Items = []string{"Go", "Postgres"}
	if a.Hash() == b.Hash() {
		t.Fatal("hash should change when element content changes")
	}

	c := sampleDoc()
	c.Elements[2].Rows = [][]string{{"1"}, {"2"}}
	if a.Hash() == c.Hash() {
		t.Fatal("hash should distinguish row boundaries")
	}
}

func TestHashListBoundaries(t *testing.T) {
	// Content must not be able to shift between adjacent list fields.
	cases := []struct {
		name string
		a, b Element
	}{
		{
			name: "columns vs rows",
			a:    Element{Kind: KindTable, Columns: []string{"a", "b"}, Rows: [][]string{{"c"}}},
			b:    Element{Kind: KindTable, Columns: []string{"a"}, Rows: [][]string{{"b", "c"}}},
		},
		{
			name: "items vs following fields",
			a:    Element{Kind: KindList, Items: []string{"x", "false"}},
			b:    Element{Kind: KindList, Items: []string{"x"}, URL: "false"},
		},
		{
			name: "links vs username",
			a:    Element{Kind: KindSocials, Links: []Link{{Name: "a", URL: "b"}}, Username: ""},
			b:    Element{Kind: KindSocials, Links: []Link{{Name: "a", URL: "b"}, {Name: "", URL: ""}}},
		},
	}
	for _, tc := range cases {
		da := Document{Name: "d", Elements: []Element{tc.a}}
		db := Document{Name: "d", Elements: []Element{tc.b}}
		if da.Hash() == db.Hash() {
			t.Errorf("%s: distinct documents collide: %s", tc.name, da.Hash())
		}
	}
}
