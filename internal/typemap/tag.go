package typemap

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// Tag identifies a language-level value type.
//
// Tags are the identity used by the catalog's value-type index. They cover
// exactly the distinguished types the catalog knows how to store natively;
// domain-specific types outside this set go through the named-type extension
// hook instead.
type Tag uint8

const (
	// TagNone means no value type was specified.
	TagNone Tag = iota

	TagBool
	TagUint8
	TagInt16
	TagInt32
	TagInt64
	TagFloat32
	TagFloat64
	TagDecimal
	TagString
	TagBytes
	TagDateTime
	TagDate
	TagTimeOfDay
	TagDuration
	TagDateTimeOffset
	TagUUID
)

var tagNames = map[Tag]string{
	TagNone:           "none",
	TagBool:           "bool",
	TagUint8:          "uint8",
	TagInt16:          "int16",
	TagInt32:          "int32",
	TagInt64:          "int64",
	TagFloat32:        "float32",
	TagFloat64:        "float64",
	TagDecimal:        "decimal",
	TagString:         "string",
	TagBytes:          "bytes",
	TagDateTime:       "datetime",
	TagDate:           "date",
	TagTimeOfDay:      "timeofday",
	TagDuration:       "duration",
	TagDateTimeOffset: "datetimeoffset",
	TagUUID:           "uuid",
}

// String returns the canonical lower-case name of the tag.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// tagAliases maps accepted spellings to tags for ParseTag. Canonical names
// from tagNames are added at init.
var tagAliases = map[string]Tag{
	"byte":   TagUint8,
	"short":  TagInt16,
	"int":    TagInt32,
	"long":   TagInt64,
	"float":  TagFloat64,
	"double": TagFloat64,
	"text":   TagString,
	"blob":   TagBytes,
	"time":   TagTimeOfDay,
	"guid":   TagUUID,
}

func init() {
	for tag, name := range tagNames {
		tagAliases[name] = tag
	}
}

// ParseTag resolves a textual type name to a Tag. Matching is
// case-insensitive and accepts a few common aliases ("long", "guid", ...).
func ParseTag(s string) (Tag, error) {
	if tag, ok := tagAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return tag, nil
	}
	return TagNone, fmt.Errorf("unknown value type %q", s)
}

// TagOf classifies a concrete Go value into a Tag.
//
// Hosts that hold runtime values rather than declared tags use this to build
// a resolution request. Unrecognized types classify as TagNone, which is a
// normal "no opinion" result, not an error.
//
// Note that time.Time classifies as TagDateTime; there is no way to tell a
// date-only or time-only intent from the value alone, so hosts with that
// intent should use civil.Date / civil.Time values or set the tag directly.
func TagOf(v any) Tag {
	switch v.(type) {
	case bool:
		return TagBool
	case uint8:
		return TagUint8
	case int16:
		return TagInt16
	case int32, int:
		return TagInt32
	case int64:
		return TagInt64
	case float32:
		return TagFloat32
	case float64:
		return TagFloat64
	case string:
		return TagString
	case []byte:
		return TagBytes
	case time.Time:
		return TagDateTime
	case time.Duration:
		return TagDuration
	case civil.Date:
		return TagDate
	case civil.Time:
		return TagTimeOfDay
	case uuid.UUID:
		return TagUUID
	default:
		return TagNone
	}
}
