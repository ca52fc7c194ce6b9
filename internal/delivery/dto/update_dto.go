package dto

import "encoding/json"

// PartialUpdateRequest is a PUT body holding any subset of a resource's
// fields, keyed by their JSON names. Values are decoded per field by the
// usecase that owns the resource.
type PartialUpdateRequest map[string]json.RawMessage
