// Package geography holds the static region catalog: descriptive metadata,
// approximate boundary polygons, and center points for each supported region.
// Boundaries are coarse outlines good enough for bounding-box sampling, not
// survey-grade geometry.
package geography

import (
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

var regionInfos = map[models.Region]models.RegionInfo{
	models.RegionNepalHimalayas: {
		Region:      models.RegionNepalHimalayas,
		Name:        "Nepal Himalayas",
		Description: "Entire Nepal Himalayan region",
		Center:      models.Coordinate{Longitude: 84.1, Latitude: 28.4},
	},
	models.RegionKathmanduValley: {
		Region:      models.RegionKathmanduValley,
		Name:        "Kathmandu Valley",
		Description: "Urban valley region",
		Center:      models.Coordinate{Longitude: 85.32, Latitude: 27.7},
	},
	models.RegionAnnapurna: {
		Region:      models.RegionAnnapurna,
		Name:        "Annapurna Region",
		Description: "Mountain region with glaciers",
		Center:      models.Coordinate{Longitude: 83.95, Latitude: 28.55},
	},
	models.RegionEverest: {
		Region:      models.RegionEverest,
		Name:        "Everest Region",
		Description: "High altitude extreme environment",
		Center:      models.Coordinate{Longitude: 86.92, Latitude: 27.96},
	},
}

// Boundary vertices run counter-clockwise and are left unclosed.
var regionBoundaries = map[models.Region]models.Boundary{
	// Country-scale outline following the east-west sweep of the range
	models.RegionNepalHimalayas: {
		{Longitude: 80.06, Latitude: 28.84},
		{Longitude: 80.59, Latitude: 28.7},
		{Longitude: 82.15, Latitude: 27.86},
		{Longitude: 84.1, Latitude: 27.0},
		{Longitude: 86.0, Latitude: 26.65},
		{Longitude: 88.2, Latitude: 26.35},
		{Longitude: 88.16, Latitude: 27.86},
		{Longitude: 86.55, Latitude: 28.1},
		{Longitude: 84.48, Latitude: 29.28},
		{Longitude: 82.2, Latitude: 30.07},
		{Longitude: 80.4, Latitude: 30.45},
	},
	models.RegionKathmanduValley: {
		{Longitude: 85.2, Latitude: 27.62},
		{Longitude: 85.37, Latitude: 27.57},
		{Longitude: 85.52, Latitude: 27.65},
		{Longitude: 85.5, Latitude: 27.78},
		{Longitude: 85.35, Latitude: 27.82},
		{Longitude: 85.22, Latitude: 27.75},
	},
	models.RegionAnnapurna: {
		{Longitude: 83.5, Latitude: 28.35},
		{Longitude: 83.82, Latitude: 28.2},
		{Longitude: 84.25, Latitude: 28.25},
		{Longitude: 84.5, Latitude: 28.48},
		{Longitude: 84.35, Latitude: 28.78},
		{Longitude: 83.9, Latitude: 28.8},
		{Longitude: 83.58, Latitude: 28.62},
	},
	models.RegionEverest: {
		{Longitude: 86.6, Latitude: 27.8},
		{Longitude: 86.85, Latitude: 27.76},
		{Longitude: 87.1, Latitude: 27.85},
		{Longitude: 87.06, Latitude: 28.04},
		{Longitude: 86.82, Latitude: 28.12},
		{Longitude: 86.64, Latitude: 28.0},
	},
}

// Info returns the catalog entry for a region.
func Info(region models.Region) (models.RegionInfo, bool) {
	info, ok := regionInfos[region]
	return info, ok
}

// BoundaryOf returns the outline polygon for a region.
func BoundaryOf(region models.Region) (models.Boundary, bool) {
	boundary, ok := regionBoundaries[region]
	return boundary, ok
}

// Center returns the representative center point for a region.
func Center(region models.Region) (models.Coordinate, bool) {
	info, ok := regionInfos[region]
	if !ok {
		return models.Coordinate{}, false
	}
	return info.Center, true
}

// Catalog returns all region entries in catalog order.
func Catalog() []models.RegionInfo {
	regions := models.Regions()
	out := make([]models.RegionInfo, 0, len(regions))
	for _, r := range regions {
		if info, ok := regionInfos[r]; ok {
			out = append(out, info)
		}
	}
	return out
}
