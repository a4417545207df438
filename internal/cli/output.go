package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/abgdnv/bakery-inventory/internal/store"
	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"
)

// print writes v to w in the selected output format.
func (a *app) print(w io.Writer, v any) error {
	switch a.output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

type productView struct {
	ID        uint64     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Category  string     `json:"category" yaml:"category"`
	Quantity  uint32     `json:"quantity" yaml:"quantity"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func toProductView(p *inventoryv1.Product) productView {
	v := productView{
		ID:        p.GetId(),
		Name:      p.GetName(),
		Category:  p.GetCategory(),
		Quantity:  p.GetQuantity(),
		CreatedAt: p.GetCreatedAt().AsTime(),
	}
	if p.UpdatedAt != nil {
		updated := p.GetUpdatedAt().AsTime()
		v.UpdatedAt = &updated
	}
	return v
}

func toProductViews(products []*inventoryv1.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

type stockView struct {
	ID       uint64 `json:"id" yaml:"id"`
	Quantity uint32 `json:"quantity" yaml:"quantity"`
}

// callError turns a gRPC status into a message fit for the terminal.
func callError(err error) error {
	if st, ok := status.FromError(err); ok {
		return fmt.Errorf("%s: %s", st.Code(), st.Message())
	}
	return err
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

func parseAmount(s string) (uint32, error) {
	amount, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return uint32(amount), nil
}

func parseCategory(s string) (string, error) {
	c, err := store.ParseCategory(s)
	if err != nil {
		return "", err
	}
	return string(c), nil
}
