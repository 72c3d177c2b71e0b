package models

// Schema is the ordered, fixed set of attribute names an entity type
// exposes. It is built once per type and never modified.
type Schema struct {
	entity string
	fields []string
	index  map[string]int
}

// NewSchema declares the fields of an entity type. Duplicate names keep
// their first position.
func NewSchema(entity string, fields ...string) *Schema {
	s := &Schema{
		entity: entity,
		fields: make([]string, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		if _, exists := s.index[field]; exists {
			continue
		}
		s.index[field] = len(s.fields)
		s.fields = append(s.fields, field)
	}
	return s
}

// Entity returns the name of the entity type the schema belongs to.
func (s *Schema) Entity() string {
	return s.entity
}

func (s *Schema) Has(field string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[field]
	return ok
}

// Fields returns a copy of the declared names in declaration order.
func (s *Schema) Fields() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}
