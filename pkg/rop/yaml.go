package rop

// The YAML projection mirrors JSON field for field.

type errorYAML struct {
	Name    string `yaml:"name"`
	Message string `yaml:"message"`
}

type outcomeYAML struct {
	Success bool       `yaml:"success"`
	Value   any        `yaml:"value,omitempty"`
	Error   *errorYAML `yaml:"error,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (j JSON) MarshalYAML() (any, error) {
	if !j.Success {
		var e *errorYAML
		if j.Error != nil {
			e = &errorYAML{Name: j.Error.Name, Message: j.Error.Message}
		}
		return outcomeYAML{Error: e}, nil
	}
	if _, ok := j.Value.(Unit); ok {
		return outcomeYAML{Success: true}, nil
	}
	return map[string]any{"success": true, "value": j.Value}, nil
}

func (r Result[T]) MarshalYAML() (any, error) {
	return r.ToJSON().MarshalYAML()
}
