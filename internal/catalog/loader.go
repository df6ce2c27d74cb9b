package catalog

import "github.com/DilerFeed/CodeEmpire/internal/config"

// FromConfig builds a catalog from an override file. Sections present in the
// file replace the corresponding built-in section wholesale; absent sections
// keep the defaults. Achievements and events always come from code.
func FromConfig(cf *config.CatalogFile) (*Catalog, error) {
	c := New()
	if len(cf.Upgrades) > 0 {
		c.Upgrades = convertEntries(cf.Upgrades)
	}
	if len(cf.Assets) > 0 {
		c.Assets = convertEntries(cf.Assets)
	}
	if len(cf.Themes) > 0 {
		themes := make([]Theme, len(cf.Themes))
		for i, t := range cf.Themes {
			themes[i] = Theme{Threshold: t.Threshold, Name: t.Name, Description: t.Description, CSS: t.CSS}
		}
		c.Themes = themes
	}
	c.reindex()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func convertEntries(in []config.CatalogEntry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = Entry{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			BaseCost:    e.BaseCost,
			Effect:      e.Effect,
			MaxLevel:    e.MaxLevel,
			Tier:        e.Tier,
			Icon:        e.Icon,
		}
	}
	return out
}
