// Package catalog provides the built-in resume template definitions.
// The definitions are stored as JSON and embedded at compile time.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTemplateID is returned by Get when a template id is unknown.
const DefaultTemplateID = "modern"

// AllCategory selects every template in ByCategory.
const AllCategory = "all"

//go:embed templates.json
var templatesJSON []byte

type catalogFile struct {
	Categories []types.TemplateCategory `json:"categories"`
	Templates  []types.Template         `json:"templates"`
}

type index struct {
	byID       map[string]types.Template
	sorted     []types.Template
	categories []types.TemplateCategory
}

var (
	loadOnce sync.Once
	loaded   *index
	loadErr  error
)

func parse(data []byte) (*index, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}

	idx := &index{
		byID:       make(map[string]types.Template, len(file.Templates)),
		categories: file.Categories,
	}
	for _, t := range file.Templates {
		if t.ID == "" {
			return nil, fmt.Errorf("template %q has no id", t.Name)
		}
		if _, dup := idx.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		idx.byID[t.ID] = t
		idx.sorted = append(idx.sorted, t)
	}
	if _, ok := idx.byID[DefaultTemplateID]; !ok {
		return nil, fmt.Errorf("template catalog is missing default template %q", DefaultTemplateID)
	}
	sort.Slice(idx.sorted, func(i, j int) bool { return idx.sorted[i].ID < idx.sorted[j].ID })
	return idx, nil
}

func catalog() *index {
	loadOnce.Do(func() {
		loaded, loadErr = parse(templatesJSON)
	})
	if loadErr != nil {
		panic(fmt.Sprintf("failed to load template catalog: %v", loadErr))
	}
	return loaded
}

// Lookup returns the template with the given id.
func Lookup(id string) (types.Template, bool) {
	t, ok := catalog().byID[id]
	return t, ok
}

// Get returns the template with the given id, or the default template
// when the id is unknown.
func Get(id string) types.Template {
	if t, ok := Lookup(id); ok {
		return t
	}
	return catalog().byID[DefaultTemplateID]
}

// All returns every template ordered by id.
func All() []types.Template {
	sorted := catalog().sorted
	out := make([]types.Template, len(sorted))
	copy(out, sorted)
	return out
}

// ByCategory returns the templates in a category ordered by id.
// AllCategory returns every template; an unknown category returns none.
func ByCategory(category string) []types.Template {
	if category == AllCategory {
		return All()
	}
	out := make([]types.Template, 0)
	for _, t := range catalog().sorted {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the template filter groups in display order.
func Categories() []types.TemplateCategory {
	cats := catalog().categories
	out := make([]types.TemplateCategory, len(cats))
	copy(out, cats)
	return out
}
