// internal/service/tag_reconciler.go
package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
)

// TagDelimiter separates tag names (and resource list elements) in request
// strings.
const TagDelimiter = ", "

// tagPalette is the fixed palette handed out to the first tags ever
// created, indexed by the global creation count across all organizations.
var tagPalette = [8][3]int{
	{241, 91, 181},
	{254, 228, 64},
	{17, 138, 178},
	{6, 214, 160},
	{155, 93, 229},
	{0, 187, 249},
	{231, 29, 54},
	{255, 159, 28},
}

// TagReconciler computes the target tag set for a requested name list,
// creating whatever is missing. It is called inside the partner write
// transaction so created tags commit or roll back with the partner.
type TagReconciler struct{}

func NewTagReconciler() *TagReconciler {
	return &TagReconciler{}
}

// SplitNames turns a delimited request string into a deduplicated name
// list, preserving first-seen order. A blank string means zero tags.
func SplitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var names []string
	for _, name := range strings.Split(raw, TagDelimiter) {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Reconcile returns one tag record per unique requested name, reusing the
// organization's existing tags and creating the rest. New tags are colored
// from the palette by the global creation count, falling back to a random
// RGB triple once the palette is spent. The insert is insert-if-absent: a
// name created concurrently is skipped at the store instead of raised as a
// unique violation, which inside the enclosing transaction Postgres would
// treat as fatal, and the winner's row is picked up by the final re-query.
func (tr *TagReconciler) Reconcile(ctx context.Context, tags repository.TagRepositoryIface, orgID uuid.UUID, names []string) ([]model.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	existing, err := tags.FindByOrgAndNames(ctx, orgID, names)
	if err != nil {
		return nil, err
	}

	if missing := missingNames(names, existing); len(missing) > 0 {
		count, err := tags.CountAll(ctx)
		if err != nil {
			return nil, err
		}

		batch := make([]model.Tag, 0, len(missing))
		for _, name := range missing {
			r, g, b := colorForIndex(count)
			batch = append(batch, model.Tag{
				Name:           name,
				ColorRed:       r,
				ColorGreen:     g,
				ColorBlue:      b,
				OrganizationID: orgID,
			})
			count++
		}

		if err := tags.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
	}

	reconciled, err := tags.FindByOrgAndNames(ctx, orgID, names)
	if err != nil {
		return nil, err
	}
	if len(reconciled) != len(names) {
		return nil, fmt.Errorf("reconciled %d tags for %d requested names", len(reconciled), len(names))
	}
	return reconciled, nil
}

func missingNames(requested []string, existing []model.Tag) []string {
	have := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		have[t.Name] = struct{}{}
	}
	var missing []string
	for _, name := range requested {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// colorForIndex gives the Nth tag ever created (0-indexed) the Nth palette
// entry; past the palette each channel is drawn uniformly from 0-255.
func colorForIndex(n int64) (r, g, b int) {
	if n >= 0 && n < int64(len(tagPalette)) {
		c := tagPalette[n]
		return c[0], c[1], c[2]
	}
	return rand.Intn(256), rand.Intn(256), rand.Intn(256)
}
