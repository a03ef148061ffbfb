package services

import (
	"github.com/camden-git/hrmbackend/repository"
)

// FailureKind classifies a failed Result so callers can pick a status code
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureNotFound
	FailureInvalid
	FailureStore
)

// Result is the outcome of a workflow operation: a resource on success, a message otherwise
type Result[T any] struct {
	Success  bool        `json:"success"`
	Resource *T          `json:"resource,omitempty"`
	Message  string      `json:"message,omitempty"`
	Kind     FailureKind `json:"-"`
}

func Ok[T any](resource T) Result[T] {
	return Result[T]{Success: true, Resource: &resource}
}

func Fail[T any](kind FailureKind, message string) Result[T] {
	return Result[T]{Success: false, Message: message, Kind: kind}
}

// PageResult is one page of a listing plus the metadata a client needs to page through it
type PageResult[T any] struct {
	Items        []T   `json:"items"`
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalRecords int64 `json:"total_records"`
	TotalPages   int   `json:"total_pages"`
}

func newPageResult[T any](items []T, p repository.Pagination, total int64) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}
	return PageResult[T]{
		Items:        items,
		Page:         p.Page,
		PageSize:     p.PageSize,
		TotalRecords: total,
		TotalPages:   totalPages,
	}
}

// Query is a client paging request before defaults are applied
type Query struct {
	Page     int
	PageSize int
	Sort     string
}

// PageLimits bounds the page size accepted from clients
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

var DefaultPageLimits = PageLimits{DefaultSize: 10, MaxSize: 100}

// normalize applies defaults: page 1, the default size, and the max size cap
func (l PageLimits) normalize(q Query) repository.Pagination {
	p := repository.Pagination{Page: q.Page, PageSize: q.PageSize, Sort: q.Sort}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = l.DefaultSize
	}
	if l.MaxSize > 0 && p.PageSize > l.MaxSize {
		p.PageSize = l.MaxSize
	}
	return p
}
