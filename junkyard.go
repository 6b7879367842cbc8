// Package junkyard tracks salvage-yard vehicle inventory. It builds provider
// search URLs, scrapes the result pages through a third-party scraping
// service, extracts inventory records from the returned markdown, and keeps
// a local history of what was seen.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, htmltomarkdown/).
package junkyard
