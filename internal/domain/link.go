package domain

import "time"

// Link is a bookmarked resource. ID is an opaque, store-assigned string whose
// lexical order is the collection order used for cursor pagination.
type Link struct {
	ID          string
	Title       string
	URL         string
	Description string
	ImageURL    string
	Category    string
	CreatedAt   time.Time
}

// LinkFilter describes a forward page request against the link store.
// A nil Limit lets the store apply its default page size. When Cursor is set
// the page starts at the cursor record; SkipCursor excludes the cursor record itself.
type LinkFilter struct {
	Limit      *int
	Cursor     *string
	SkipCursor bool
}

// Edge pairs a link with the cursor that addresses it.
type Edge struct {
	Cursor string
	Node   Link
}

// PageInfo describes where a page ends and whether more links follow it.
type PageInfo struct {
	EndCursor   *string
	HasNextPage bool
}

// LinkConnection is one page of links.
type LinkConnection struct {
	PageInfo PageInfo
	Edges    []Edge
}
