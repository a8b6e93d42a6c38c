// Package models holds the shared types of the repository/base layer
// (pagination and count results).
package models

// PaginateResult represents a pagination result.
type PaginateResult[T any] struct {
	// Current page
	Page int64 `json:"page" bson:"page"`
	// Items per page
	Limit int64 `json:"limit" bson:"limit"`
	// Items in the current page
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// The items
	Items []T `json:"items" bson:"items"`
	// Total number of items
	Total int64 `json:"total" bson:"total"`
	// Total number of pages
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult represents a count result.
type CountResult struct {
	// Total item count
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	// Items per page
	Limit int64 `json:"limit" bson:"limit"`
	// Total number of pages
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
