package crud

// Field describes one persisted column of an entity. Name doubles as the JSON
// key and the database column (models use snake_case tags that match gorm's
// naming strategy).
type Field struct {
	Name       string
	Required   bool
	Unique     bool
	HasDefault bool
	Generated  bool // assigned by the store (primary key, timestamps)
}

// Descriptor is the static metadata for one entity: its route name and field
// table. Built once at startup and read-only afterwards.
type Descriptor struct {
	Entity string
	fields []Field
	byName map[string]Field
}

func NewDescriptor(entity string, fields ...Field) Descriptor {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return Descriptor{Entity: entity, fields: fields, byName: byName}
}

func (d Descriptor) Field(name string) (Field, bool) {
	f, ok := d.byName[name]
	return f, ok
}

func (d Descriptor) Fields() []Field {
	return d.fields
}

// MissingRequired returns the required fields absent or empty in data.
// Generated and defaulted fields are skipped: the store assigns those.
func (d Descriptor) MissingRequired(data map[string]any) []string {
	var missing []string
	for _, f := range d.fields {
		if !f.Required || f.Generated || f.HasDefault {
			continue
		}
		v, ok := data[f.Name]
		if !ok || isEmpty(v) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
