package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/placename-desk/placename-desk/client"
)

type relay interface {
	SearchPlacenames(ctx context.Context, q client.SearchQuery) (json.RawMessage, error)
	GetPlacename(ctx context.Context, sysID string) (json.RawMessage, error)
}

func runSearch(ctx context.Context, r relay, q client.SearchQuery, raw bool, out io.Writer) error {
	body, err := r.SearchPlacenames(ctx, q)
	if err != nil {
		return err
	}
	if raw {
		return writeIndented(out, body)
	}
	env, err := client.DecodeSearchEnvelope(body)
	if err != nil {
		return err
	}
	page := env.Datas
	fmt.Fprintf(out, "%d records, page %d of %d\n", page.Total, page.Current, page.Pages)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYSID\tNAME\tTYPE\tYEARS\tPRESENT LOCATION")
	for _, rec := range page.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			dash(rec.SysID), dash(displayName(rec)), dash(featureName(rec.FeatureType)),
			yearSpan(rec.Temporal), dash(presentLocation(rec.Spatial)))
	}
	return tw.Flush()
}

func runGet(ctx context.Context, r relay, sysID string, raw bool, out io.Writer) error {
	body, err := r.GetPlacename(ctx, sysID)
	if err != nil {
		return err
	}
	if raw {
		return writeIndented(out, body)
	}
	d, err := client.DecodePlacenameDetail(body)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	row := func(k, v string) { fmt.Fprintf(tw, "%s:\t%s\n", k, dash(v)) }
	row("sysId", d.SysID)
	row("Name", displayName(d.PlacenameRecord))
	row("Transliteration", d.NameTr)
	row("Type", featureName(d.FeatureType))
	row("Years", yearSpan(d.Temporal))
	row("Present location", presentLocation(d.Spatial))
	if d.Spatial != nil && d.Spatial.XCoord != "" {
		row("Coordinates", d.Spatial.XCoord+", "+d.Spatial.YCoord)
	}
	if d.HistoricalContext != nil {
		row("Part of", relationNames(d.HistoricalContext.PartOf))
		row("Preceded by", relationNames(d.HistoricalContext.PrecededBy))
		row("Later", relationNames(d.HistoricalContext.Later))
	}
	row("Source", firstNonEmpty(d.DataSource, d.DataSrc))
	row("Source URI", d.SourceURI)
	row("License", d.License)
	return tw.Flush()
}

func writeIndented(out io.Writer, body json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(out)
	return err
}

func displayName(r client.PlacenameRecord) string {
	return firstNonEmpty(r.NameVn, r.NameTr, r.NameEn, r.NameAlt)
}

func featureName(ft *client.FeatureType) string {
	if ft == nil {
		return ""
	}
	return firstNonEmpty(ft.NameVn, ft.NameEn)
}

func yearSpan(t *client.TemporalInfo) string {
	if t == nil || (t.BegYr == 0 && t.EndYr == 0) {
		return "-"
	}
	return fmt.Sprintf("%d–%d", t.BegYr, t.EndYr)
}

func presentLocation(s *client.SpatialInfo) string {
	if s == nil {
		return ""
	}
	parts := make([]string, 0, len(s.PresentLocation))
	for _, p := range s.PresentLocation {
		if p.TextValue != "" {
			parts = append(parts, p.TextValue)
		}
	}
	return strings.Join(parts, "; ")
}

func relationNames(rels []client.HistoricalRelation) string {
	parts := make([]string, 0, len(rels))
	for _, r := range rels {
		parts = append(parts, fmt.Sprintf("%s (%s)", firstNonEmpty(r.Name, r.SysID), r.SysID))
	}
	return strings.Join(parts, "; ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
