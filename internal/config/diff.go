// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Config sections reported by Diff.
const (
	SectionUI            = "ui"
	SectionSEO           = "seo"
	SectionLogo          = "header.logo"
	SectionSearch        = "header.search"
	SectionLinks         = "header.links"
	SectionExternalLinks = "header.externalLinks"
	SectionTOC           = "toc"
)

// nil and empty link lists mean the same thing.
var equateEmpty = cmpopts.EquateEmpty()

// Equal reports whether two configurations are semantically identical.
func Equal(a, b SiteConfig) bool {
	return cmp.Equal(a, b, equateEmpty)
}

// Diff compares two configurations and returns the changed sections in a
// fixed order.
func Diff(old, next SiteConfig) []string {
	var changed []string
	check := func(section string, a, b any) {
		if !cmp.Equal(a, b, equateEmpty) {
			changed = append(changed, section)
		}
	}

	check(SectionUI, old.UI, next.UI)
	check(SectionSEO, old.SEO, next.SEO)
	check(SectionLogo, old.Header.Logo, next.Header.Logo)
	check(SectionSearch, old.Header.Search, next.Header.Search)
	check(SectionLinks, old.Header.Links, next.Header.Links)
	check(SectionExternalLinks, old.Header.ExternalLinks, next.Header.ExternalLinks)
	check(SectionTOC, old.TOC, next.TOC)

	return changed
}
