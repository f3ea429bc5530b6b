package domain

import "encoding/json"

// Patch is a tri-state field for partial updates. It distinguishes the
// three cases a JSON payload can express:
//
//   - the field is absent            -> Set == false
//   - the field is explicitly null   -> Set == true, Null == true
//   - the field carries a value      -> Set == true, Null == false
//
// A plain pointer collapses the first two cases, which makes "leave
// unchanged" and "clear this field" indistinguishable.
type Patch[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// PatchOf returns a Patch carrying the given value.
func PatchOf[T any](v T) Patch[T] {
	return Patch[T]{Value: v, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// field is present in the payload, so Set is always true here; absent
// fields keep the zero Patch.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true

	if string(data) == "null" {
		p.Null = true
		return nil
	}

	return json.Unmarshal(data, &p.Value)
}

// MarshalJSON implements json.Marshaler.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.Set || p.Null {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// ValueSet reports whether the field was present with a non-null value.
func (p Patch[T]) ValueSet() bool {
	return p.Set && !p.Null
}
