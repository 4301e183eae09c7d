package annotate

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

var (
	// ErrMissingAnnotation - a matrix label has no metadata record.
	ErrMissingAnnotation = errors.New("annotate: missing annotation")

	// ErrDuplicateRecord - the same label was added to a Source twice.
	ErrDuplicateRecord = errors.New("annotate: duplicate record")

	// ErrEmptyLabel - a record without a label is meaningless.
	ErrEmptyLabel = errors.New("annotate: empty record label")
)

// Record is the metadata attached to one leaf label. Extra holds values for
// the Source's extra columns, in column order.
type Record struct {
	Label  string
	Group  string
	Family string
	Extra  []string
}

// Source is an ordered set of Records keyed by exact label. The zero value
// is not usable; construct with NewSource.
type Source struct {
	records *treemap.Map // label -> Record, iterated in label order
	extras  []string     // names of extra columns beyond group/family
}

// NewSource returns an empty Source whose Records carry the given extra
// column names (may be none).
func NewSource(extraColumns ...string) *Source {
	return &Source{
		records: treemap.NewWithStringComparator(),
		extras:  append([]string(nil), extraColumns...),
	}
}

// ExtraColumns returns the extra column names, in order.
func (s *Source) ExtraColumns() []string {
	return append([]string(nil), s.extras...)
}

// Len returns the number of records.
func (s *Source) Len() int { return s.records.Size() }

// Add stores one record. Labels must be unique and non-empty.
func (s *Source) Add(r Record) error {
	if r.Label == "" {
		return fmt.Errorf("Add: %w", ErrEmptyLabel)
	}
	if _, exists := s.records.Get(r.Label); exists {
		return fmt.Errorf("Add: label %q: %w", r.Label, ErrDuplicateRecord)
	}
	s.records.Put(r.Label, r)
	return nil
}

// Get returns the record for label, and whether it exists.
func (s *Source) Get(label string) (Record, bool) {
	v, ok := s.records.Get(label)
	if !ok {
		return Record{}, false
	}
	return v.(Record), true
}

// Each visits all records in ascending label order.
func (s *Source) Each(visit func(Record)) {
	s.records.Each(func(_ interface{}, v interface{}) {
		visit(v.(Record))
	})
}

// Map projects the source onto the given leaf labels, returning one Record
// per label in the same order. The first label without a record fails with
// ErrMissingAnnotation carrying that label; nothing partial is returned.
func Map(labels []string, src *Source) ([]Record, error) {
	out := make([]Record, 0, len(labels))
	for _, label := range labels {
		r, ok := src.Get(label)
		if !ok {
			return nil, fmt.Errorf("Map: label %q: %w", label, ErrMissingAnnotation)
		}
		out = append(out, r)
	}
	return out, nil
}
