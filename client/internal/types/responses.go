package types

import (
	"encoding/json"
	"fmt"
)

// ------------------------------
// Response Types
// ------------------------------
//
// The relays return the gazetteer body untouched. These models describe the
// fields callers usually read from it; unknown fields are ignored.

// SearchEnvelope wraps every search response.
type SearchEnvelope struct {
	RespCode int         `json:"resp_code"`
	RespMsg  string      `json:"resp_msg,omitempty"`
	Datas    *SearchPage `json:"datas,omitempty"`
}

// SearchPage is one page of search hits. Current is 1-based.
type SearchPage struct {
	Total   int               `json:"total"`
	Size    int               `json:"size"`
	Pages   int               `json:"pages"`
	Current int               `json:"current"`
	Records []PlacenameRecord `json:"records"`
}

// PlacenameRecord is a search hit.
type PlacenameRecord struct {
	ID          int             `json:"id,omitempty"`
	SysID       string          `json:"sysId,omitempty"`
	NameVn      string          `json:"nameVn,omitempty"`
	NameEn      string          `json:"nameEn,omitempty"`
	NameTr      string          `json:"nameTr,omitempty"`
	NameAlt     string          `json:"nameAlt,omitempty"`
	Spellings   []SpellingEntry `json:"spellings,omitempty"`
	FeatureType *FeatureType    `json:"featureType,omitempty"`
	Temporal    *TemporalInfo   `json:"temporal,omitempty"`
	Spatial     *SpatialInfo    `json:"spatial,omitempty"`
}

// FeatureType names the kind of place (county, prefecture, ...).
type FeatureType struct {
	NameVn string `json:"nameVn,omitempty"`
	NameEn string `json:"nameEn,omitempty"`
}

// TemporalInfo is the attested year span.
type TemporalInfo struct {
	BegYr     int  `json:"begYr,omitempty"`
	EndYr     int  `json:"endYr,omitempty"`
	BegRuleID *int `json:"begRuleId,omitempty"`
	EndRuleID *int `json:"endRuleId,omitempty"`
}

// SpatialInfo carries present-day locations and, on detail responses,
// coordinates.
type SpatialInfo struct {
	ObjType         string            `json:"objType,omitempty"`
	PresentLocation []PresentLocation `json:"presentLocation,omitempty"`
	Source          string            `json:"source,omitempty"`
	XCoord          string            `json:"xcoord,omitempty"`
	YCoord          string            `json:"ycoord,omitempty"`
	XYType          string            `json:"xyType,omitempty"`
}

// PresentLocation maps a historical place to a modern one.
type PresentLocation struct {
	TextValue   string `json:"textValue,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Source      string `json:"source,omitempty"`
	Attestation string `json:"attestation,omitempty"`
}

// SpellingEntry is one written form of a name.
type SpellingEntry struct {
	WrittenForm string `json:"writtenForm,omitempty"`
	Script      string `json:"script,omitempty"`
	ExonymLang  string `json:"exonymLang,omitempty"`
	AttestedBy  string `json:"attestedBy,omitempty"`
	Note        string `json:"note,omitempty"`
}

// HistoricalRelation links a placename to another one over time.
type HistoricalRelation struct {
	ID     int    `json:"id,omitempty"`
	SysID  string `json:"sysId,omitempty"`
	Name   string `json:"name,omitempty"`
	Script string `json:"script,omitempty"`
	BegYr  int    `json:"begYr,omitempty"`
	EndYr  int    `json:"endYr,omitempty"`
}

// HistoricalContext groups the relations of a detail record.
type HistoricalContext struct {
	PartOf           []HistoricalRelation `json:"partOf,omitempty"`
	SubordinateUnits []HistoricalRelation `json:"subordinateUnits,omitempty"`
	PrecededBy       []HistoricalRelation `json:"precededBy,omitempty"`
	Later            []HistoricalRelation `json:"later,omitempty"`
}

// PlacenameDetail is the full record returned by the detail endpoint.
type PlacenameDetail struct {
	PlacenameRecord
	DataSrc           string             `json:"dataSrc,omitempty"`
	DataSource        string             `json:"dataSource,omitempty"`
	SourceNote        string             `json:"sourceNote,omitempty"`
	SourceURI         string             `json:"sourceUri,omitempty"`
	License           string             `json:"license,omitempty"`
	Reason            string             `json:"reason,omitempty"`
	Reason2           string             `json:"reason2,omitempty"`
	CheckStatus       *int               `json:"checkStatus,omitempty"`
	HistoricalContext *HistoricalContext `json:"historicalContext,omitempty"`
}

// DecodeSearchEnvelope decodes a search body and rejects envelopes whose
// resp_code is non-zero or which carry no data.
func DecodeSearchEnvelope(raw json.RawMessage) (*SearchEnvelope, error) {
	var env SearchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode search envelope: %w", err)
	}
	if env.RespCode != 0 {
		if env.RespMsg == "" {
			return nil, fmt.Errorf("search rejected: resp_code %d", env.RespCode)
		}
		return nil, fmt.Errorf("search rejected: %s", env.RespMsg)
	}
	if env.Datas == nil {
		return nil, fmt.Errorf("search response carries no data")
	}
	return &env, nil
}

// DecodePlacenameDetail decodes a detail body.
func DecodePlacenameDetail(raw json.RawMessage) (*PlacenameDetail, error) {
	var d PlacenameDetail
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode placename detail: %w", err)
	}
	return &d, nil
}
