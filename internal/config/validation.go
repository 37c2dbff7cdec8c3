// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ManuGH/sitecfg/internal/validate"
	"golang.org/x/text/unicode/norm"
)

// colorToken matches palette names such as "green", "slate" or "cool-gray".
var colorToken = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

var assetSchemes = []string{"http", "https"}

// Validate validates a SiteConfig using the centralized validation package.
// All problems are reported at once, each tagged with its field path.
// Values are checked as written; nothing is rewritten.
func Validate(cfg SiteConfig) error {
	v := validate.New()

	validateColor(v, "ui.primary", cfg.UI.Primary)
	validateColor(v, "ui.gray", cfg.UI.Gray)

	v.NotEmpty("seo.siteName", cfg.SEO.SiteName)
	validateText(v, "seo.siteName", cfg.SEO.SiteName)
	validateText(v, "header.logo.alt", cfg.Header.Logo.Alt)

	validateAsset(v, "header.logo.light", cfg.Header.Logo.Light)
	validateAsset(v, "header.logo.dark", cfg.Header.Logo.Dark)

	validateLinks(v, "header.links", cfg.Header.Links, false)
	validateLinks(v, "header.externalLinks", cfg.Header.ExternalLinks, true)

	v.NotEmpty("toc.title", cfg.TOC.Title)
	validateText(v, "toc.title", cfg.TOC.Title)

	if !v.IsValid() {
		return v.Err()
	}

	return nil
}

func validateColor(v *validate.Validator, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
		return
	}
	v.Matches(field, value, colorToken, "a lower-case color name")
}

// validateAsset accepts an empty value, a site path or an absolute http(s) URL.
func validateAsset(v *validate.Validator, field, value string) {
	if value == "" {
		return
	}
	if strings.HasPrefix(value, "/") {
		v.SitePath(field, value)
		return
	}
	v.URL(field, value, assetSchemes)
}

// validateText rejects display text that is not in Unicode NFC form, so that
// equal-looking labels compare equal byte for byte.
func validateText(v *validate.Validator, field, value string) {
	if !norm.NFC.IsNormalString(value) {
		v.AddError(field, "text must be in Unicode NFC form", value)
	}
}

// validateLinks checks one navigation list. Links of an external list, and
// links whose target is an absolute URL, must point to an http(s) URL.
func validateLinks(v *validate.Validator, list string, links []NavLink, external bool) {
	fieldFor := func(i int) string { return fmt.Sprintf("%s[%d].to", list, i) }

	targets := make([]string, len(links))
	for i, link := range links {
		item := fmt.Sprintf("%s[%d]", list, i)
		targets[i] = link.To

		switch {
		case strings.TrimSpace(link.To) == "":
			v.AddError(fieldFor(i), "link target is required", link.To)
		case external || link.IsExternal():
			v.URL(fieldFor(i), link.To, assetSchemes)
		default:
			v.SitePath(fieldFor(i), link.To)
		}

		if strings.TrimSpace(link.Label) == "" && strings.TrimSpace(link.Icon) == "" {
			v.AddError(item, "link needs a label or an icon", link.To)
		}
		validateText(v, item+".label", link.Label)
		// Surrounding blanks in an icon name are tolerated; inner ones are not.
		if icon := strings.TrimSpace(link.Icon); icon != "" {
			v.NoWhitespace(item+".icon", icon)
		}
		if link.Target != "" && !validate.LinkTarget(link.Target).IsValid() {
			v.AddError(item+".target",
				fmt.Sprintf("must be one of: %s", strings.Join(validate.LinkTargets(), ", ")), link.Target)
		}
	}

	v.Unique(targets, fieldFor)
}
