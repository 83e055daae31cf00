package pool

import (
	"fmt"

	"github.com/l1jgo/netpool/internal/data"
	"go.uber.org/zap"
)

// ValidateEntries resolves authored pool entries against the template table
// and produces the corrected Config list Initialize consumes. Pure pass, run
// once before any registration:
//
//   - an empty pool_id defaults to the template's name
//   - duplicate pool ids are disambiguated with a " (n)" suffix
//   - a negative prewarm count is corrected to its absolute value
//   - an unknown template id or a non-networked template is an authoring
//     error and fails the whole list
func ValidateEntries(entries []data.PoolEntry, templates *data.TemplateTable, log *zap.Logger) ([]Config, error) {
	used := make(map[string]struct{}, len(entries))
	out := make([]Config, 0, len(entries))

	for i, e := range entries {
		tpl := templates.Get(e.TemplateID)
		if tpl == nil {
			return nil, fmt.Errorf("pool entry %d: unknown template id %d", i, e.TemplateID)
		}
		if !tpl.Networked {
			return nil, fmt.Errorf("pool entry %d (%s): %w", i, tpl.Name, ErrMissingCapability)
		}

		id := e.PoolID
		if id == "" {
			id = tpl.Name
		}
		unique := uniqueID(used, id)
		if unique != id {
			log.Warn("duplicate pool id renamed",
				zap.String("pool_id", id),
				zap.String("renamed_to", unique),
			)
		}
		used[unique] = struct{}{}

		prewarm := e.Prewarm
		if prewarm < 0 {
			log.Warn("negative prewarm corrected",
				zap.String("pool_id", unique),
				zap.Int("prewarm", prewarm),
			)
			prewarm = -prewarm
		}

		out = append(out, Config{Template: tpl, PoolID: unique, Prewarm: prewarm})
	}
	return out, nil
}

// uniqueID returns id unchanged when free, otherwise the first free
// "id (n)" starting at n=1.
func uniqueID(used map[string]struct{}, id string) string {
	if _, taken := used[id]; !taken {
		return id
	}
	for n := 1; ; n++ {
		cand := fmt.Sprintf("%s (%d)", id, n)
		if _, taken := used[cand]; !taken {
			return cand
		}
	}
}
