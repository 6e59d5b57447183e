// Package model holds the persisted entities and the transfer objects
// exchanged with API clients.
//
// Entities carry `db` tags for pgx row scanning. Transfer objects carry the
// JSON field names the frontend already speaks (blogId, productUrl, ...).
package model

import "strings"

// FileURL derives the public URL of a stored image:
// <baseURL>/<entity>/file/<name>. An empty name yields an empty URL.
func FileURL(baseURL, entity, name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + entity + "/file/" + name
}
