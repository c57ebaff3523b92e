package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matkb/matkb/pkg/utils/cmp"
)

// FieldKind is the data shape of a metadata field.
type FieldKind string

const (
	FieldText        FieldKind = "text"
	FieldNumber      FieldKind = "number"
	FieldSelect      FieldKind = "select"
	FieldMultiSelect FieldKind = "multiselect"
	FieldBool        FieldKind = "bool"
	FieldDate        FieldKind = "date"
)

func (fk FieldKind) String() string {
	return string(fk)
}

// HasOptions tells whether the kind carries a closed option list.
func (fk FieldKind) HasOptions() bool {
	return fk == FieldSelect || fk == FieldMultiSelect
}

func AsFieldKind(kind string) (FieldKind, error) {
	switch kind {
	case string(FieldText):
		return FieldText, nil
	case string(FieldNumber):
		return FieldNumber, nil
	case string(FieldSelect):
		return FieldSelect, nil
	case string(FieldMultiSelect):
		return FieldMultiSelect, nil
	case string(FieldBool):
		return FieldBool, nil
	case string(FieldDate):
		return FieldDate, nil
	default:
		return "", fmt.Errorf("%w: unknown field kind: %s", ErrInvalidField, kind)
	}
}

// FieldDefinition describes one metadata attribute a material document carries.
type FieldDefinition struct {
	Id       int
	Key      string
	Label    string
	Kind     FieldKind
	Required bool

	// Options is the closed value list for select kinds. Empty otherwise.
	Options []string

	// Position orders fields in entry forms. Smaller comes first.
	Position int
}

func (f FieldDefinition) Equal(o FieldDefinition) bool {
	return f.Id == o.Id &&
		f.Key == o.Key &&
		f.Label == o.Label &&
		f.Kind == o.Kind &&
		f.Required == o.Required &&
		cmp.SliceEq(f.Options, o.Options) &&
		f.Position == o.Position
}

// FieldParam is what a caller specifies to register or update a field.
type FieldParam struct {
	Key      string
	Label    string
	Kind     FieldKind
	Required bool
	Options  []string
	Position int
}

var (
	ErrInvalidField  = errors.New("invalid field definition")
	ErrFieldKeyTaken = errors.New("field key is taken")
	ErrFieldNotFound = errors.New("field not found")
)

// Validate normalizes the param or reports ErrInvalidField.
//
// Select kinds require at least one option; other kinds must not carry any.
func (p FieldParam) Validate() (FieldParam, error) {
	p.Key = strings.TrimSpace(p.Key)
	if p.Key == "" {
		return p, fmt.Errorf("%w: key is required", ErrInvalidField)
	}
	if p.Label == "" {
		p.Label = p.Key
	}

	if _, err := AsFieldKind(string(p.Kind)); err != nil {
		return p, err
	}

	if p.Kind.HasOptions() {
		if len(p.Options) == 0 {
			return p, fmt.Errorf("%w: kind %s requires options", ErrInvalidField, p.Kind)
		}
	} else if len(p.Options) != 0 {
		return p, fmt.Errorf("%w: kind %s does not take options", ErrInvalidField, p.Kind)
	}

	return p, nil
}
