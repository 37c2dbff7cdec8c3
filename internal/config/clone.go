// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

// Clone returns an alias-free deep copy of SiteConfig.
// Only reference types (slices) are cloned; nested structs are copied by value.
func Clone(in SiteConfig) SiteConfig {
	out := in
	out.Header.Links = cloneNavLinks(in.Header.Links)
	out.Header.ExternalLinks = cloneNavLinks(in.Header.ExternalLinks)
	return out
}

func cloneNavLinks(in []NavLink) []NavLink {
	if in == nil {
		return nil
	}
	out := make([]NavLink, len(in))
	copy(out, in)
	return out
}
