package types

import (
	"encoding/json"
	"errors"
	"strconv"
)

// IntOrString accepts both 3 and "3" in JSON bodies. Dashboard forms tend
// to send select values as strings.
type IntOrString int

func (i *IntOrString) UnmarshalJSON(b []byte) error {
	var asInt int
	if err := json.Unmarshal(b, &asInt); err == nil {
		*i = IntOrString(asInt)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		parsed, err := strconv.Atoi(asStr)
		if err != nil {
			return err
		}
		*i = IntOrString(parsed)
		return nil
	}

	return errors.New("invalid int or string")
}

// UnmarshalText is used by multipart form decoding.
func (i *IntOrString) UnmarshalText(b []byte) error {
	parsed, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	*i = IntOrString(parsed)
	return nil
}

// IntPtr converts an optional IntOrString to *int.
func IntPtr(v *IntOrString) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
