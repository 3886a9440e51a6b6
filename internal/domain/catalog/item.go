package catalog

type QuantityRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// ItemDefinition is the canonical metadata for one item id. Names map
// language codes to display names; tier doubles as a rarity proxy when
// no explicit rarity is set.
type ItemDefinition struct {
	ID          string            `yaml:"id"`
	Names       map[string]string `yaml:"names"`
	Description string            `yaml:"description"`
	Tier        int               `yaml:"tier"`
	Rarity      *float64          `yaml:"rarity,omitempty"`
	Quantity    QuantityRange     `yaml:"quantity"`
	Emoji       string            `yaml:"emoji"`
}

// Name returns the display name for lang, falling back to English and
// finally the id itself.
func (d ItemDefinition) Name(lang string) string {
	if n, ok := d.Names[lang]; ok && n != "" {
		return n
	}
	if n, ok := d.Names["en"]; ok && n != "" {
		return n
	}
	return d.ID
}

type ItemRegistry map[string]ItemDefinition

func (r ItemRegistry) Get(id string) (ItemDefinition, bool) {
	d, ok := r[id]
	return d, ok
}
