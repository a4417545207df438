package store

import (
	"fmt"
	"strings"
	"time"
)

// Category is the closed set of product categories.
type Category string

const (
	Cake    Category = "Cake"
	Cookies Category = "Cookies"
	Bakery  Category = "Bakery"
)

// Categories lists every valid category.
var Categories = []Category{Cake, Cookies, Bakery}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Cake, Cookies, Bakery:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// UnmarshalText accepts known category names in any case.
// Unknown names are kept verbatim so that Valid reports them.
func (c *Category) UnmarshalText(text []byte) error {
	if parsed, err := ParseCategory(string(text)); err == nil {
		*c = parsed
		return nil
	}
	*c = Category(text)
	return nil
}

// ParseCategory converts s to a Category, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q, expected one of %v", s, Categories)
}

// Product is a stock record.
type Product struct {
	ID        uint64     `json:"id"         yaml:"id"`
	Name      string     `json:"name"       yaml:"name"`
	Category  Category   `json:"category"   yaml:"category"`
	Quantity  uint32     `json:"quantity"   yaml:"quantity"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// clone returns a copy of p that shares no memory with it.
func (p Product) clone() Product {
	if p.UpdatedAt != nil {
		u := *p.UpdatedAt
		p.UpdatedAt = &u
	}
	return p
}
