package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedElements() []Element {
	return []Element{
		{ID: "1", Kind: KindBanner, Title: "Hi"},
		{ID: "2", Kind: KindCodeBlock, Code: "x"},
		{ID: "3", Kind: KindText, Text: "about"},
		{ID: "4", Kind: KindTechStack, Items: []string{"Go"}},
		{ID: "5", Kind: KindInstallation, Items: []string{"make"}},
		{ID: "6", Kind: KindSocials, Links: []Link{{Name: "web", URL: "https://x"}}},
	}
}

func idsOf(elements []Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterByMode(t *testing.T) {
	all := mixedElements()

	dev := Filter(all, ViewDeveloper)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, idsOf(dev))

	recruiter := Filter(all, ViewRecruiter)
	assert.Equal(t, []string{"1", "3", "4", "6"}, idsOf(recruiter))

	client := Filter(all, ViewClient)
	assert.Equal(t, []string{"1", "3", "6"}, idsOf(client))
}

func TestFilterIdempotent(t *testing.T) {
	all := mixedElements()
	for _, mode := range ViewModes {
		once := Filter(all, mode)
		twice := Filter(once, mode)
		require.Equal(t, once, twice, "mode %s", mode)
	}
}

func TestFilterUnknownKindVisibleEverywhere(t *testing.T) {
	els := []Element{{ID: "x", Kind: Kind("shimmer")}}
	for _, mode := range ViewModes {
		got := Filter(els, mode)
		require.Len(t, got, 1, "mode %s", mode)
	}
}

func TestParseViewMode(t *testing.T) {
	cases := []struct {
		in   string
		want ViewMode
		ok   bool
	}{
		{"developer", ViewDeveloper, true},
		{"dev", ViewDeveloper, true},
		{"recruiter", ViewRecruiter, true},
		{"client", ViewClient, true},
		{"investor", ViewDeveloper, false},
		{"", ViewDeveloper, false},
	}
	for _, tc := range cases {
		got, ok := ParseViewMode(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
	}
}
