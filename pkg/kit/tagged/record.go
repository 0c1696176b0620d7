package tagged

import (
	"fmt"
	"maps"

	"github.com/ib-77/typekit/pkg/kit"
	"github.com/ib-77/typekit/pkg/kit/dual"
)

// Record is a mutable set of named fields that can be stamped with a tag
// exactly once. A Record must not be shared between owners while it is
// being built.
type Record struct {
	fields map[string]any
	tag    Tag
	tagged bool
	sealed bool
	frozen bool
}

// NewRecord copies fields into a new, extensible record.
func NewRecord(fields map[string]any) *Record {
	r := &Record{fields: make(map[string]any, len(fields))}
	maps.Copy(r.fields, fields)
	return r
}

// Tag returns the stamped tag. A nil record has none.
func (r *Record) Tag() Tag {
	if r == nil {
		return ""
	}
	return r.tag
}

// IsTagged reports whether the record already has a TagField.
func (r *Record) IsTagged() bool {
	if r == nil {
		return false
	}
	if r.tagged {
		return true
	}
	_, ok := r.fields[TagField]
	return ok
}

func (r *Record) Field(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	if name == TagField && r.tagged {
		return r.tag, true
	}
	v, ok := r.fields[name]
	return v, ok
}

// Fields returns a copy of the plain fields, without the stamped tag.
func (r *Record) Fields() map[string]any {
	if r == nil {
		return nil
	}
	return maps.Clone(r.fields)
}

// Set writes a field. New fields require an extensible record, existing
// ones a non-frozen record. The stamped tag is read-only.
func (r *Record) Set(name string, value any) error {
	if name == TagField && r.tagged {
		return fmt.Errorf("tagged: field %s is read-only: %w", TagField, kit.ErrIllegalState)
	}

	if r.frozen {
		return fmt.Errorf("tagged: record is frozen: %w", kit.ErrNotExtensible)
	}

	if _, ok := r.fields[name]; !ok && r.sealed {
		return fmt.Errorf("tagged: cannot add field %s to sealed record: %w", name, kit.ErrNotExtensible)
	}

	r.fields[name] = value
	return nil
}

// Seal prevents new fields from being added.
func (r *Record) Seal() {
	r.sealed = true
}

// Freeze prevents any further field writes.
func (r *Record) Freeze() {
	r.sealed = true
	r.frozen = true
}

// IsExtensible reports whether the record can take new fields.
func (r *Record) IsExtensible() bool {
	if r == nil {
		return false
	}
	return !r.sealed && !r.frozen
}

// Stamp writes tag onto r and returns it. On failure the record is left
// untouched and nil is returned. It fails with kit.ErrIllegalState
// when r is already tagged and with kit.ErrNotExtensible when r cannot take
// a new field.
func Stamp(r *Record, tag Tag) (*Record, error) {
	if r == nil {
		return nil, fmt.Errorf("tagged: nil record: %w", kit.ErrNotExtensible)
	}

	if r.IsTagged() {
		return nil, fmt.Errorf("tagged: record already tagged %v: %w", r.currentTag(), kit.ErrIllegalState)
	}

	if !r.IsExtensible() {
		return nil, fmt.Errorf("tagged: cannot stamp %q: %w", tag, kit.ErrNotExtensible)
	}

	r.tag = tag
	r.tagged = true
	return r, nil
}

// StampWith is the data-last form of Stamp.
func StampWith(tag Tag) func(*Record) (*Record, error) {
	return dual.Last2(Stamp)(tag)
}

func (r *Record) currentTag() any {
	v, _ := r.Field(TagField)
	return v
}
