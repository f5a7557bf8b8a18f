package dbx

import (
	"database/sql"
	"fmt"
	"time"
)

// Layouts SQLite drivers are known to store timestamps in.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

type timeScanner struct {
	dst *time.Time
}

// ScanTime returns a sql.Scanner that stores a timestamp column into dst.
// PostgreSQL hands back time.Time; SQLite may hand back text when the
// column type is not known to the driver (e.g. RETURNING expressions).
func ScanTime(dst *time.Time) sql.Scanner {
	return timeScanner{dst: dst}
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dst = v.UTC()
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.dst = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s timeScanner) parse(v string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.dst = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", v)
}
