package models

import "testing"

// TestParseRegion tests region parsing and validation
func TestParseRegion(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Region
		wantError bool
	}{
		{"nepal himalayas", "nepal_himalayas", RegionNepalHimalayas, false},
		{"kathmandu valley", "kathmandu_valley", RegionKathmanduValley, false},
		{"annapurna", "annapurna_region", RegionAnnapurna, false},
		{"everest", "everest_region", RegionEverest, false},
		{"unknown", "pokhara_valley", "", true},
		{"empty", "", "", true},
		{"display name rejected", "Kathmandu Valley", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRegion(tt.input)

			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestRegionDisplayName verifies the titles used in trend narratives
func TestRegionDisplayName(t *testing.T) {
	tests := []struct {
		region Region
		want   string
	}{
		{RegionNepalHimalayas, "Nepal Himalayas"},
		{RegionKathmanduValley, "Kathmandu Valley"},
		{RegionAnnapurna, "Annapurna Region"},
		{RegionEverest, "Everest Region"},
	}

	for _, tt := range tests {
		t.Run(tt.region.String(), func(t *testing.T) {
			if got := tt.region.DisplayName(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
