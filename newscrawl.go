// Package newscrawl crawls paginated news listings, extracts articles
// from the pages they link to, and persists the collected records as a
// dataset named after the capture date.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, parquet/).
package newscrawl
