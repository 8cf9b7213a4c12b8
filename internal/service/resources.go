// internal/service/resources.go
package service

import (
	"strconv"
	"strings"

	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
)

// ResourceInput carries the three parallel delimited lists from a partner
// request. All-empty means "no resources".
type ResourceInput struct {
	Types   string `json:"resource_types"`
	Names   string `json:"resource_names"`
	Amounts string `json:"resource_amounts"`
}

// ParseResources validates and materializes the parallel lists into
// resource rows. Parsing happens before anything is deleted: mismatched
// lengths or an unparseable element reject the whole request, they never
// cost the partner its existing resources.
func ParseResources(in ResourceInput) ([]model.Resource, error) {
	if strings.TrimSpace(in.Types) == "" &&
		strings.TrimSpace(in.Names) == "" &&
		strings.TrimSpace(in.Amounts) == "" {
		return nil, nil
	}

	types := strings.Split(in.Types, TagDelimiter)
	names := strings.Split(in.Names, TagDelimiter)
	amounts := strings.Split(in.Amounts, TagDelimiter)

	if len(types) != len(names) || len(names) != len(amounts) {
		return nil, domain.ErrResourceList
	}

	resources := make([]model.Resource, 0, len(names))
	for i := range names {
		typ, err := strconv.Atoi(strings.TrimSpace(types[i]))
		if err != nil || !model.ResourceType(typ).Valid() {
			return nil, domain.ErrResourceList
		}
		amount, err := strconv.Atoi(strings.TrimSpace(amounts[i]))
		if err != nil {
			return nil, domain.ErrResourceList
		}
		if names[i] == "" {
			return nil, domain.ErrResourceList
		}
		resources = append(resources, model.Resource{
			Type:   model.ResourceType(typ),
			Name:   names[i],
			Amount: amount,
		})
	}
	return resources, nil
}
