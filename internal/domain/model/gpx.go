package model

import (
	"encoding/xml"
	"fmt"
)

// gpxDocument mirrors the subset of GPX 1.1 we emit: a single track with one
// segment of track points.
type gpxDocument struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Xmlns   string   `xml:"xmlns,attr"`
	Track   gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name    string       `xml:"name"`
	Segment gpxSegment   `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxTrackPoint `xml:"trkpt"`
}

type gpxTrackPoint struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
}

// BuildGPX renders a route as a GPX 1.1 XML document string.
func BuildGPX(name string, route Route) (string, error) {
	doc := gpxDocument{
		Version: "1.1",
		Creator: "Route Variety Helper",
		Xmlns:   "http://www.topografix.com/GPX/1/1",
		Track: gpxTrack{
			Name:    name,
			Segment: gpxSegment{Points: make([]gpxTrackPoint, 0, len(route))},
		},
	}
	for _, c := range route {
		doc.Track.Segment.Points = append(doc.Track.Segment.Points, gpxTrackPoint{Lat: c.Lat, Lon: c.Lng})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal GPX: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}
