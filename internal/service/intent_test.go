package service

import (
	"strings"
	"testing"

	"rentassist/internal/model"
)

func TestExtractIntent(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      model.Intent
	}{
		{
			name:      "Full English query",
			utterance: "3 bedroom apartment in KLCC under RM3000",
			want:      model.Intent{Location: "KLCC", Bedrooms: 3, MaxPrice: 3000},
		},
		{
			name:      "Full Malay query",
			utterance: "Saya nak cari rumah 2 bilik di Klang bawah RM1500",
			want:      model.Intent{Location: "Klang", Bedrooms: 2, MaxPrice: 1500},
		},
		{
			name:      "No patterns at all",
			utterance: "hello",
			want:      model.Intent{},
		},
		{
			name:      "Empty utterance",
			utterance: "",
			want:      model.Intent{},
		},
		{
			name:      "Location only, multi-word",
			utterance: "anything in bukit bintang please",
			want:      model.Intent{Location: "Bukit Bintang"},
		},
		{
			name:      "Fully furnished keyword",
			utterance: "furnished condo in Bangsar",
			want:      model.Intent{Location: "Bangsar", Furnished: model.FurnishingFull},
		},
		{
			name:      "Partially furnished wins over the contained full keyword",
			utterance: "partially furnished unit in Cheras",
			want:      model.Intent{Location: "Cheras", Furnished: model.FurnishingPartial},
		},
		{
			name:      "Malay furnishing keyword",
			utterance: "rumah berperabot di subang jaya",
			want:      model.Intent{Location: "Subang Jaya", Furnished: model.FurnishingFull},
		},
		{
			name:      "Budget keyword without currency token",
			utterance: "room in puchong budget 800",
			want:      model.Intent{Location: "Puchong", MaxPrice: 800},
		},
		{
			name:      "Currency-prefixed price wins over the bedroom number",
			utterance: "2 bilik tidur sewa RM1200",
			want:      model.Intent{Bedrooms: 2, MaxPrice: 1200},
		},
		{
			name:      "Bare number is captured as price",
			utterance: "apartment around 900 please",
			want:      model.Intent{MaxPrice: 900},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIntent(tt.utterance)
			if got != tt.want {
				t.Errorf("ExtractIntent(%q) = %+v, want %+v", tt.utterance, got, tt.want)
			}
		})
	}
}

// The extractor must be total: no input may panic or error out.
func TestExtractIntent_Total(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"!!!???",
		"999999999999999999999999 bilik",
		"rm",
		"bukit",
	}
	for _, in := range inputs {
		got := ExtractIntent(in)
		if got.Bedrooms < 0 || got.MaxPrice < 0 {
			t.Errorf("ExtractIntent(%q) produced negative sentinel: %+v", in, got)
		}
	}
}

func TestGazetteerOrdering(t *testing.T) {
	// Multi-word entries must precede any entry they contain, so the more
	// specific name captures first.
	index := make(map[string]int, len(Gazetteer))
	for i, entry := range Gazetteer {
		index[entry.Match] = i
	}
	for _, entry := range Gazetteer {
		for other, pos := range index {
			if other == entry.Match {
				continue
			}
			if len(other) > len(entry.Match) && strings.Contains(other, entry.Match) && pos > index[entry.Match] {
				t.Errorf("gazetteer entry %q is ordered after the less specific %q that it contains", other, entry.Match)
			}
		}
	}
}
