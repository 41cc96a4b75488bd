package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Tab names used to group the directory.
const (
	TabAll      = "all"
	TabHospital = "hospital"
	TabNGO      = "ngo"
	TabOther    = "other"
)

// Tabs lists the valid tab names in display order.
var Tabs = []string{TabAll, TabHospital, TabNGO, TabOther}

// ErrUnknownTab is returned for tab names outside Tabs.
var ErrUnknownTab = errors.New("unknown tab")

// Source supplies the provider list.
type Source interface {
	ListResources(ctx context.Context) ([]Resource, error)
}

// StaticSource serves the built-in catalog.
type StaticSource struct{}

// ListResources implements Source.
func (StaticSource) ListResources(context.Context) ([]Resource, error) {
	return Catalog(), nil
}

// Directory searches a Source.
type Directory struct {
	src Source
}

// NewDirectory returns a Directory over src. A nil src uses the built-in
// catalog.
func NewDirectory(src Source) *Directory {
	if src == nil {
		src = StaticSource{}
	}
	return &Directory{src: src}
}

// Search returns resources whose name, location, type or any service
// contains query, case-insensitively. An empty query matches everything.
func (d *Directory) Search(ctx context.Context, query string) ([]Resource, error) {
	all, err := d.src.ListResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Resource, 0, len(all))
	for _, r := range all {
		if Matches(r, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Tab returns the search results restricted to one tab.
func (d *Directory) Tab(ctx context.Context, tab, query string) ([]Resource, error) {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" {
		tab = TabAll
	}
	if !validTab(tab) {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTab, tab, strings.Join(Tabs, ", "))
	}

	found, err := d.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]Resource, 0, len(found))
	for _, r := range found {
		if InTab(r, tab) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Matches reports whether r matches an already lower-cased query.
func Matches(r Resource, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(r.Location), lowerQuery) ||
		strings.Contains(strings.ToLower(r.Type), lowerQuery) {
		return true
	}
	for _, s := range r.Services {
		if strings.Contains(strings.ToLower(s), lowerQuery) {
			return true
		}
	}
	return false
}

// InTab reports whether r belongs in tab.
func InTab(r Resource, tab string) bool {
	switch tab {
	case TabHospital:
		return r.Type == TypeHospital
	case TabNGO:
		return r.Type == TypeNGO
	case TabOther:
		return r.Type != TypeHospital && r.Type != TypeNGO
	default:
		return true
	}
}

func validTab(tab string) bool {
	for _, t := range Tabs {
		if t == tab {
			return true
		}
	}
	return false
}
