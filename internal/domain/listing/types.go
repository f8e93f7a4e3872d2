package listing

import (
	"errors"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid listing category")

type Category string

const (
	CategoryTour      Category = "tour"
	CategoryStay      Category = "stay"
	CategoryVolunteer Category = "volunteer"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTour, CategoryStay, CategoryVolunteer:
		return true
	default:
		return false
	}
}

// NewCategory accepts any casing; category values are matched
// case-insensitively throughout.
func NewCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPublished, StatusDraft, StatusArchived:
		return true
	default:
		return false
	}
}
