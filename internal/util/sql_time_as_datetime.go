package util

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// SQLDateTimeFormat is the textual layout SQLite uses for
// DATETIME DEFAULT CURRENT_TIMESTAMP columns. Values are UTC.
const SQLDateTimeFormat = "2006-01-02 15:04:05"

// TimeAsDateTime is stored as a SQLite datetime string but used as a
// time.Time.
type TimeAsDateTime time.Time

func NewTimeAsDateTime(t time.Time) TimeAsDateTime {
	return TimeAsDateTime(t.UTC().Truncate(time.Second))
}

func (t TimeAsDateTime) Value() (driver.Value, error) {
	return driver.Value(time.Time(t).UTC().Format(SQLDateTimeFormat)), nil
}

func (t TimeAsDateTime) Time() time.Time {
	return time.Time(t)
}

func (t *TimeAsDateTime) Scan(src interface{}) error {
	switch src := src.(type) {
	case time.Time:
		// The driver already parsed the declared DATETIME column.
		*t = TimeAsDateTime(src.UTC())
	case []byte:
		return t.scanString(string(src))
	case string:
		return t.scanString(src)
	default:
		return fmt.Errorf("expected time.Time, []byte, or string, got %T", src)
	}

	return nil
}

func (t *TimeAsDateTime) scanString(src string) error {
	tmp, err := time.ParseInLocation(SQLDateTimeFormat, src, time.UTC)
	if err != nil {
		return err
	}

	*t = TimeAsDateTime(tmp)
	return nil
}

// MarshalJSON writes the same textual form the database stores, which is
// also what the browser client expects.
func (t TimeAsDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(SQLDateTimeFormat) + `"`), nil
}

type NullTimeAsDateTime struct {
	Time  TimeAsDateTime
	Valid bool // Valid is true if Time is not NULL
}

// Scan implements the Scanner interface.
func (ns *NullTimeAsDateTime) Scan(value interface{}) error {
	if value == nil {
		ns.Time, ns.Valid = TimeAsDateTime{}, false
		return nil
	}

	ns.Valid = true

	return ns.Time.Scan(value)
}

// Value implements the driver Valuer interface.
func (ns NullTimeAsDateTime) Value() (driver.Value, error) {
	if !ns.Valid {
		return nil, nil
	}

	return ns.Time.Value()
}

func (ns NullTimeAsDateTime) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}

	return ns.Time.MarshalJSON()
}
