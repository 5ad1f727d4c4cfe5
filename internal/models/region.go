package models

import (
	"fmt"
	"strings"
)

// Region identifies one of the fixed geographic areas of interest.
// Like Indicator, the set is closed; geography and adjustment tables carry an
// entry for every member.
type Region string

const (
	RegionNepalHimalayas  Region = "nepal_himalayas"
	RegionKathmanduValley Region = "kathmandu_valley"
	RegionAnnapurna       Region = "annapurna_region"
	RegionEverest         Region = "everest_region"
)

// Regions returns all supported regions in catalog order.
func Regions() []Region {
	return []Region{
		RegionNepalHimalayas,
		RegionKathmanduValley,
		RegionAnnapurna,
		RegionEverest,
	}
}

// ParseRegion validates a raw string against the closed region set.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.Valid() {
		return "", fmt.Errorf("unsupported region %q", s)
	}
	return r, nil
}

// Valid reports whether the region belongs to the closed set.
func (r Region) Valid() bool {
	switch r {
	case RegionNepalHimalayas, RegionKathmanduValley, RegionAnnapurna, RegionEverest:
		return true
	}
	return false
}

func (r Region) String() string {
	return string(r)
}

// DisplayName renders the region identifier as a human-readable title,
// e.g. "kathmandu_valley" -> "Kathmandu Valley". Used in trend narratives.
func (r Region) DisplayName() string {
	parts := strings.Split(string(r), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// RegionInfo is the descriptive metadata the geography registry holds for a
// region.
type RegionInfo struct {
	Region      Region     `json:"region"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Center      Coordinate `json:"center"`
}
