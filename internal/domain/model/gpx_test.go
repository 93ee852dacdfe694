package model

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGPX(t *testing.T) {
	route := Route{
		{Lat: 35.0116, Lng: 135.7681},
		{Lat: 35.0120, Lng: 135.7690},
	}

	out, err := BuildGPX("Morning Run", route)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `version="1.1"`)
	assert.Contains(t, out, `xmlns="http://www.topografix.com/GPX/1/1"`)
	assert.Contains(t, out, "<name>Morning Run</name>")

	var doc gpxDocument
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Track.Segment.Points, 2)
	assert.Equal(t, 35.0116, doc.Track.Segment.Points[0].Lat)
	assert.Equal(t, 135.7681, doc.Track.Segment.Points[0].Lon)
}

func TestBuildGPXEmptyRoute(t *testing.T) {
	out, err := BuildGPX("Empty", Route{})
	require.NoError(t, err)

	var doc gpxDocument
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))
	assert.Empty(t, doc.Track.Segment.Points)
}

func TestLatLngStreamToRoute(t *testing.T) {
	stream := LatLngStream{
		{35.0, 135.0},
		{35.1},     // malformed, skipped
		{35.2, 135.2, 99},
	}

	route := stream.ToRoute()
	require.Len(t, route, 2)
	assert.Equal(t, LatLng{Lat: 35.0, Lng: 135.0}, route[0])
	assert.Equal(t, LatLng{Lat: 35.2, Lng: 135.2}, route[1])
}
