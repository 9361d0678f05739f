// Package refdoc scrapes API reference documentation sites into structured
// records and writes them out as HTML, JSON and plain-text artifacts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package refdoc
