package rop

import (
	json "github.com/goccy/go-json"

	"github.com/ib-77/outcome/pkg/rop/errs"
)

// ErrorJSON is the serialized form of a failure error. Causes are never
// included.
type ErrorJSON struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// JSON is the serializable projection of a Result:
//
//	{"success":true,"value":...}
//	{"success":false,"error":{"name":...,"message":...}}
//
// A Unit success omits "value".
type JSON struct {
	Success bool
	Value   any
	Error   *ErrorJSON
}

type successJSON struct {
	Success bool `json:"success"`
	Value   any  `json:"value"`
}

type unitJSON struct {
	Success bool `json:"success"`
}

type failureJSON struct {
	Success bool       `json:"success"`
	Error   *ErrorJSON `json:"error"`
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if !j.Success {
		return json.Marshal(failureJSON{Success: false, Error: j.Error})
	}
	if _, ok := j.Value.(Unit); ok {
		return json.Marshal(unitJSON{Success: true})
	}
	return json.Marshal(successJSON{Success: true, Value: j.Value})
}

// ToJSON projects r into its serializable shape.
func (r Result[T]) ToJSON() JSON {
	r.mustBeConstructed("ToJSON")
	if r.isSuccess {
		return JSON{Success: true, Value: r.value}
	}
	return JSON{
		Success: false,
		Error: &ErrorJSON{
			Name:    errs.NameOf(r.err),
			Message: r.err.Error(),
		},
	}
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return r.ToJSON().MarshalJSON()
}
