package client

import "github.com/placename-desk/placename-desk/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	SearchQuery = types.SearchQuery

	// Responses
	SearchEnvelope     = types.SearchEnvelope
	SearchPage         = types.SearchPage
	PlacenameRecord    = types.PlacenameRecord
	PlacenameDetail    = types.PlacenameDetail
	FeatureType        = types.FeatureType
	TemporalInfo       = types.TemporalInfo
	SpatialInfo        = types.SpatialInfo
	PresentLocation    = types.PresentLocation
	SpellingEntry      = types.SpellingEntry
	HistoricalRelation = types.HistoricalRelation
	HistoricalContext  = types.HistoricalContext
)

// Helpers for building a SearchQuery.
var (
	Uint32 = types.Uint32
	String = types.String
)

// DecodeSearchEnvelope decodes a SearchPlacenames result, failing when the
// gazetteer reports a non-zero resp_code.
var DecodeSearchEnvelope = types.DecodeSearchEnvelope

// DecodePlacenameDetail decodes a GetPlacename result.
var DecodePlacenameDetail = types.DecodePlacenameDetail
