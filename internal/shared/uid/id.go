package uid

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is a numeric identifier produced by Snowflake. Values never exceed
// MaxSafeInteger, so ID marshals to a plain JSON number.
type ID int64

// ParseID parses the canonical decimal form of an identifier: no sign, no
// leading zeros, no surrounding space.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("uid: invalid id %q: %w", s, err)
	}
	if v < 0 || v > MaxSafeInteger {
		return 0, fmt.Errorf("uid: id %d outside [0, %d]", v, int64(MaxSafeInteger))
	}
	if id := ID(v); id.String() == s {
		return id, nil
	}
	return 0, fmt.Errorf("uid: invalid id %q: not in canonical form", s)
}

func (id ID) Int64() int64 { return int64(id) }

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id ID) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(id), 10), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string, the
// latter being what clients that stringify large integers send back.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
