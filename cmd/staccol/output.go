package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/robert-malhotra/go-stac-collection/pkg/stac"
)

func printCollection(w io.Writer, col *stac.Collection) {
	fmt.Fprintf(w, "ID: %s\n", col.Id)
	if col.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", col.Title)
	}
	fmt.Fprintf(w, "Description: %s\n", col.Description)
	fmt.Fprintf(w, "License: %s\n", col.License)
	fmt.Fprintf(w, "STAC version: %s\n", col.Version)
	if len(col.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords: %s\n", strings.Join(col.Keywords, ", "))
	}
	if len(col.Extensions) > 0 {
		fmt.Fprintf(w, "Extensions:\n")
		for _, ext := range col.Extensions {
			fmt.Fprintf(w, "  %s\n", ext)
		}
	}

	if col.Extent != nil {
		if col.Extent.Spatial != nil {
			for _, box := range col.Extent.Spatial.Bbox {
				fmt.Fprintf(w, "Bbox: %v\n", box)
			}
		}
		if col.Extent.Temporal != nil {
			for _, interval := range col.Extent.Temporal.Interval {
				fmt.Fprintf(w, "Interval: %s\n", formatInterval(interval))
			}
		}
	}

	if len(col.ItemAssets) > 0 {
		fmt.Fprintf(w, "Item assets:\n")
		keys := make([]string, 0, len(col.ItemAssets))
		for key := range col.ItemAssets {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			asset := col.ItemAssets[key]
			line := "  " + key
			if bands := asset.BandNames(); len(bands) > 0 {
				line += " [" + strings.Join(bands, ", ") + "]"
			}
			fmt.Fprintln(w, line)
		}
	}

	if href := col.SelfHref(); href != "" {
		fmt.Fprintf(w, "Self: %s\n", href)
	}
}

func formatInterval(interval []*string) string {
	parts := make([]string, len(interval))
	for i, bound := range interval {
		if bound == nil {
			parts[i] = "open"
		} else {
			parts[i] = *bound
		}
	}
	return strings.Join(parts, " / ")
}
