package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ReferenceEntry is one visual-property reference in the gallery:
// an example image of a property value (say, luster = "vitreous").
type ReferenceEntry struct {
	Id         int
	Property   string
	ValueLabel string

	// ImageURL points into external object storage; bytes are not ours.
	ImageURL string
	Caption  string
	Position int
}

func (r ReferenceEntry) Equal(o ReferenceEntry) bool {
	return r.Id == o.Id &&
		r.Property == o.Property &&
		r.ValueLabel == o.ValueLabel &&
		r.ImageURL == o.ImageURL &&
		r.Caption == o.Caption &&
		r.Position == o.Position
}

// ReferenceEntryParam is what a caller specifies to register or update an entry.
type ReferenceEntryParam struct {
	Property   string
	ValueLabel string
	ImageURL   string
	Caption    string
	Position   int
}

var (
	ErrInvalidReferenceEntry  = errors.New("invalid reference entry")
	ErrReferenceEntryNotFound = errors.New("reference entry not found")
)

// Validate normalizes the param or reports ErrInvalidReferenceEntry.
func (p ReferenceEntryParam) Validate() (ReferenceEntryParam, error) {
	p.Property = strings.TrimSpace(p.Property)
	p.ValueLabel = strings.TrimSpace(p.ValueLabel)
	if p.Property == "" || p.ValueLabel == "" {
		return p, fmt.Errorf("%w: property and value are required", ErrInvalidReferenceEntry)
	}

	u, err := url.Parse(p.ImageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return p, fmt.Errorf("%w: image url is not absolute: %s", ErrInvalidReferenceEntry, p.ImageURL)
	}

	return p, nil
}
