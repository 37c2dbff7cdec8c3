// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

// SiteConfig is the aggregate configuration record consumed by the site front end.
type SiteConfig struct {
	UI     UIConfig     `yaml:"ui" json:"ui"`
	SEO    SEOConfig    `yaml:"seo" json:"seo"`
	Header HeaderConfig `yaml:"header" json:"header"`
	TOC    TOCConfig    `yaml:"toc" json:"toc"`
}

// UIConfig selects the theme palette.
type UIConfig struct {
	Primary string `yaml:"primary" json:"primary"`
	Gray    string `yaml:"gray" json:"gray"`
}

// SEOConfig holds page metadata defaults.
type SEOConfig struct {
	SiteName string `yaml:"siteName" json:"siteName"`
}

// HeaderConfig describes branding and navigation shown in the page header.
type HeaderConfig struct {
	Logo          LogoConfig `yaml:"logo" json:"logo"`
	Search        bool       `yaml:"search" json:"search"`
	Links         []NavLink  `yaml:"links,omitempty" json:"links,omitempty"`
	ExternalLinks []NavLink  `yaml:"externalLinks,omitempty" json:"externalLinks,omitempty"`
}

// LogoConfig points at the logo assets for light and dark color modes.
// Every field is optional.
type LogoConfig struct {
	Alt   string `yaml:"alt" json:"alt"`
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
}

// TOCConfig configures the per-page table of contents.
type TOCConfig struct {
	Title string `yaml:"title" json:"title"`
}

// NavLink is a navigation entry with a display label and target path.
type NavLink struct {
	Label    string `yaml:"label,omitempty" json:"label,omitempty"`
	To       string `yaml:"to" json:"to"`
	External bool   `yaml:"external,omitempty" json:"external"`
	Icon     string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Target   string `yaml:"target,omitempty" json:"target,omitempty"`
}
