package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Int64 reads an integer column. Drivers differ in the integer width they
// return, so any signed width is accepted.
func (r Row) Int64(column string) (int64, error) {
	switch v := r[column].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("column %s: unexpected %T for integer", column, v)
	}
}

// String reads a text column.
func (r Row) String(column string) (string, error) {
	switch v := r[column].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("column %s: unexpected %T for text", column, v)
	}
}

// UUID reads a uuid column, accepting the textual and binary forms drivers
// return.
func (r Row) UUID(column string) (uuid.UUID, error) {
	switch v := r[column].(type) {
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case string:
		return uuid.Parse(v)
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.ParseBytes(v)
	case nil:
		return uuid.Nil, nil
	default:
		return uuid.Nil, fmt.Errorf("column %s: unexpected %T for uuid", column, v)
	}
}

// Time reads a timestamp column.
func (r Row) Time(column string) (time.Time, error) {
	switch v := r[column].(type) {
	case time.Time:
		return v, nil
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("column %s: unexpected %T for timestamp", column, v)
	}
}
