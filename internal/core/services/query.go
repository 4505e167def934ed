package services

import (
	"regexp"
	"strings"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// Footprint shapes the package extractor recognises, tried in order.
var (
	imperialSize = regexp.MustCompile(`[_:].*?(\d{4})(?:_|$)`)
	metricSize   = regexp.MustCompile(`_(\d{4})Metric`)
	packageName  = regexp.MustCompile(`(?i)(SOT-?\d+|SOIC-?\d+|QFP-?\d+|TSSOP-?\d+|LQFP-?\d+|QFN-?\d+)`)
)

// metricToImperial maps metric chip sizes to the imperial codes
// suppliers index parts by.
var metricToImperial = map[string]string{
	"1005": "0402",
	"1608": "0603",
	"2012": "0805",
	"3216": "1206",
	"3225": "1210",
}

// BuildQuery derives the catalog search query for a component: its
// value plus a package token taken from the footprint. Pure function;
// the same component always yields the same query.
func BuildQuery(c *domain.SymbolComponent) string {
	parts := make([]string, 0, 2)
	if v := strings.TrimSpace(c.Value); v != "" {
		parts = append(parts, v)
	}
	if p := PackageToken(c.Footprint); p != "" {
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// PackageToken extracts the size or package-name token from a KiCad
// footprint name:
//
//	Capacitor_SMD:C_0402_1005Metric -> 0402
//	Resistor_SMD:R_0603_1608Metric  -> 0603
//	Package_SO:SOIC-8_3.9x4.9mm     -> SOIC-8
//
// A footprint matching none of the known shapes is returned whole,
// so the query still narrows the search.
func PackageToken(footprint string) string {
	footprint = strings.TrimSpace(footprint)
	if footprint == "" {
		return ""
	}

	if m := imperialSize.FindStringSubmatch(footprint); m != nil {
		return m[1]
	}

	if m := metricSize.FindStringSubmatch(footprint); m != nil {
		if imperial, ok := metricToImperial[m[1]]; ok {
			return imperial
		}
		return m[1]
	}

	if m := packageName.FindString(footprint); m != "" {
		return m
	}

	return footprint
}
