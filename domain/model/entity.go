package model

// Entity is the minimal capability surface the tabulators need from a parsed
// building-model record. Adapters wrap their concrete record shape behind it
// so the core never depends on a parser's object layout.
type Entity interface {
	// TypeName returns the entity's schema type (e.g. "IfcWall"). A lookup
	// failure is recoverable: the tabulator skips the entity and warns.
	TypeName() (string, error)

	// DisplayName returns the entity's human-facing name attribute.
	// The second return is false when the attribute is absent.
	DisplayName() (string, bool)
}

// FrequencyTable maps a label to an occurrence count. Outside of comparison
// unions no entry holds a zero count.
type FrequencyTable map[string]int

// Total returns the sum of all counts in the table.
func (t FrequencyTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}
