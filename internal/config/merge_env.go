// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

// Environment overrides. Link lists are only configurable through the document.
const (
	EnvPrefix = "SITECFG_"

	// EnvConfigPath is read by the CLI, not by the Loader.
	EnvConfigPath = "SITECFG_CONFIG"

	EnvUIPrimary    = "SITECFG_UI_PRIMARY"
	EnvUIGray       = "SITECFG_UI_GRAY"
	EnvSEOSiteName  = "SITECFG_SEO_SITE_NAME"
	EnvHeaderSearch = "SITECFG_HEADER_SEARCH"
	EnvLogoAlt      = "SITECFG_LOGO_ALT"
	EnvLogoLight    = "SITECFG_LOGO_LIGHT"
	EnvLogoDark     = "SITECFG_LOGO_DARK"
	EnvTOCTitle     = "SITECFG_TOC_TITLE"
)

// KnownEnvKeys lists every SITECFG_* key the tool understands.
func KnownEnvKeys() []string {
	return []string{
		EnvConfigPath,
		EnvUIPrimary,
		EnvUIGray,
		EnvSEOSiteName,
		EnvHeaderSearch,
		EnvLogoAlt,
		EnvLogoLight,
		EnvLogoDark,
		EnvTOCTitle,
	}
}

// mergeEnvConfig merges environment variables into cfg.
// ENV variables have the highest precedence.
func (l *Loader) mergeEnvConfig(cfg *SiteConfig) {
	l.mergeEnvUI(cfg)
	l.mergeEnvSEO(cfg)
	l.mergeEnvHeader(cfg)
	l.mergeEnvTOC(cfg)
}

func (l *Loader) mergeEnvUI(cfg *SiteConfig) {
	cfg.UI.Primary = l.envString(EnvUIPrimary, cfg.UI.Primary)
	cfg.UI.Gray = l.envString(EnvUIGray, cfg.UI.Gray)
}

func (l *Loader) mergeEnvSEO(cfg *SiteConfig) {
	cfg.SEO.SiteName = l.envString(EnvSEOSiteName, cfg.SEO.SiteName)
}

func (l *Loader) mergeEnvHeader(cfg *SiteConfig) {
	cfg.Header.Search = l.envBool(EnvHeaderSearch, cfg.Header.Search)
	cfg.Header.Logo.Alt = l.envString(EnvLogoAlt, cfg.Header.Logo.Alt)
	cfg.Header.Logo.Light = l.envString(EnvLogoLight, cfg.Header.Logo.Light)
	cfg.Header.Logo.Dark = l.envString(EnvLogoDark, cfg.Header.Logo.Dark)
}

func (l *Loader) mergeEnvTOC(cfg *SiteConfig) {
	cfg.TOC.Title = l.envString(EnvTOCTitle, cfg.TOC.Title)
}
