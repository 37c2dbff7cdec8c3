// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import "net/url"

// IsExternal reports whether the link leaves the site. A link is external
// when it says so or when its target is an absolute http(s) URL.
// Entries of header.externalLinks are external regardless of this result.
func (l NavLink) IsExternal() bool {
	return l.External || isAbsoluteHTTPURL(l.To)
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
