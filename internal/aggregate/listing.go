// Package aggregate merges per-sentence extraction results into corpus
// level listings and counters
package aggregate

import "github.com/ppiankov/argstruct/internal/model"

// Listing is an ordered set of items of one category. The first insertion
// of an item fixes its position, the last one fixes its provenance.
type Listing struct {
	category   model.Category
	order      []string
	provenance map[string]model.Provenance
}

// NewListing creates an empty listing for category
func NewListing(category model.Category) *Listing {
	return &Listing{
		category:   category,
		provenance: make(map[string]model.Provenance),
	}
}

// Category returns the category the listing collects
func (l *Listing) Category() model.Category {
	return l.category
}

// Add records item found at p
func (l *Listing) Add(item string, p model.Provenance) {
	if _, seen := l.provenance[item]; !seen {
		l.order = append(l.order, item)
	}
	l.provenance[item] = p
}

// Merge adds the items of other in their order
func (l *Listing) Merge(other *Listing) {
	for _, item := range other.order {
		l.Add(item, other.provenance[item])
	}
}

// Len returns the number of distinct items
func (l *Listing) Len() int {
	return len(l.order)
}

// Items returns the listing content in insertion order
func (l *Listing) Items() []model.ClassifiedItem {
	items := make([]model.ClassifiedItem, len(l.order))
	for i, item := range l.order {
		items[i] = model.ClassifiedItem{
			Item:       item,
			Category:   l.category,
			Provenance: l.provenance[item],
		}
	}
	return items
}

// Listings holds one Listing per category
type Listings struct {
	byCategory map[model.Category]*Listing
}

// NewListings creates empty listings for all categories
func NewListings() *Listings {
	ls := &Listings{byCategory: make(map[model.Category]*Listing, len(model.Categories))}
	for _, c := range model.Categories {
		ls.byCategory[c] = NewListing(c)
	}
	return ls
}

// Add routes item to the listing of its category
func (ls *Listings) Add(item model.ClassifiedItem) {
	l, ok := ls.byCategory[item.Category]
	if !ok {
		l = NewListing(item.Category)
		ls.byCategory[item.Category] = l
	}
	l.Add(item.Item, item.Provenance)
}

// AddAll adds items in order
func (ls *Listings) AddAll(items []model.ClassifiedItem) {
	for _, item := range items {
		ls.Add(item)
	}
}

// Get returns the listing of category (never nil)
func (ls *Listings) Get(category model.Category) *Listing {
	if l, ok := ls.byCategory[category]; ok {
		return l
	}
	return NewListing(category)
}
