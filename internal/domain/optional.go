package domain

import "encoding/json"

// Optional marks whether a field was supplied. It is used for partial updates:
// an unset Optional leaves the stored value unchanged, a set one replaces it
// (including with the zero value).
type Optional[T any] struct {
	Val   T
	IsSet bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Val: v, IsSet: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// UnmarshalJSON treats a JSON null the same as an absent key.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.IsSet = false
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Val = v
	o.IsSet = true
	return nil
}
