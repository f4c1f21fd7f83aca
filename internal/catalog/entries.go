package catalog

import (
	"github.com/schemakit/typemap/internal/typemap"
)

func ip(v int) *int { return &v }

// Entry templates. These are shared immutable values: every Catalog hands
// out the same pointers, and parameterization always clones via WithFacets.
var (
	bigintEntry   = &typemap.StoreMapping{StoreType: "bigint", StoreTypeBase: "bigint", Tag: typemap.TagInt64}
	bitEntry      = &typemap.StoreMapping{StoreType: "bit", StoreTypeBase: "bit", Tag: typemap.TagBool}
	intEntry      = &typemap.StoreMapping{StoreType: "int", StoreTypeBase: "int", Tag: typemap.TagInt32}
	smallintEntry = &typemap.StoreMapping{StoreType: "smallint", StoreTypeBase: "smallint", Tag: typemap.TagInt16}
	tinyintEntry  = &typemap.StoreMapping{StoreType: "tinyint", StoreTypeBase: "tinyint", Tag: typemap.TagUint8}

	doubleEntry = &typemap.StoreMapping{StoreType: "float", StoreTypeBase: "float", Tag: typemap.TagFloat64}
	realEntry   = &typemap.StoreMapping{StoreType: "real", StoreTypeBase: "real", Tag: typemap.TagFloat32}

	decimalEntry = &typemap.StoreMapping{
		StoreType:     "decimal(18,2)",
		StoreTypeBase: "decimal",
		Tag:           typemap.TagDecimal,
		Precision:     ip(18),
		Scale:         ip(2),
		Postfix:       typemap.PostfixPrecisionScale,
	}
	moneyEntry      = &typemap.StoreMapping{StoreType: "money", StoreTypeBase: "money", Tag: typemap.TagDecimal}
	smallmoneyEntry = &typemap.StoreMapping{StoreType: "smallmoney", StoreTypeBase: "smallmoney", Tag: typemap.TagDecimal}

	datetime2Entry      = &typemap.StoreMapping{StoreType: "datetime2", StoreTypeBase: "datetime2", Tag: typemap.TagDateTime}
	datetimeEntry       = &typemap.StoreMapping{StoreType: "datetime", StoreTypeBase: "datetime", Tag: typemap.TagDateTime}
	smalldatetimeEntry  = &typemap.StoreMapping{StoreType: "smalldatetime", StoreTypeBase: "smalldatetime", Tag: typemap.TagDateTime}
	dateEntry           = &typemap.StoreMapping{StoreType: "date", StoreTypeBase: "date", Tag: typemap.TagDate}
	timeEntry           = &typemap.StoreMapping{StoreType: "time", StoreTypeBase: "time", Tag: typemap.TagTimeOfDay}
	datetimeoffsetEntry = &typemap.StoreMapping{StoreType: "datetimeoffset", StoreTypeBase: "datetimeoffset", Tag: typemap.TagDateTimeOffset}

	uniqueidentifierEntry = &typemap.StoreMapping{StoreType: "uniqueidentifier", StoreTypeBase: "uniqueidentifier", Tag: typemap.TagUUID}

	fixedAnsiStringEntry = &typemap.StoreMapping{
		StoreType:     "char",
		StoreTypeBase: "char",
		Tag:           typemap.TagString,
		FixedLength:   true,
		Postfix:       typemap.PostfixSize,
	}
	variableAnsiStringEntry = &typemap.StoreMapping{
		StoreType:     "varchar",
		StoreTypeBase: "varchar",
		Tag:           typemap.TagString,
		Postfix:       typemap.PostfixSize,
	}
	maxAnsiStringEntry = &typemap.StoreMapping{
		StoreType:     "varchar(max)",
		StoreTypeBase: "varchar",
		Tag:           typemap.TagString,
		Postfix:       typemap.PostfixSize,
	}

	fixedUnicodeStringEntry = &typemap.StoreMapping{
		StoreType:     "nchar",
		StoreTypeBase: "nchar",
		Tag:           typemap.TagString,
		Unicode:       true,
		FixedLength:   true,
		Postfix:       typemap.PostfixSize,
	}
	variableUnicodeStringEntry = &typemap.StoreMapping{
		StoreType:     "nvarchar",
		StoreTypeBase: "nvarchar",
		Tag:           typemap.TagString,
		Unicode:       true,
		Postfix:       typemap.PostfixSize,
	}
	maxUnicodeStringEntry = &typemap.StoreMapping{
		StoreType:     "nvarchar(max)",
		StoreTypeBase: "nvarchar",
		Tag:           typemap.TagString,
		Unicode:       true,
		Postfix:       typemap.PostfixSize,
	}

	textEntry  = &typemap.StoreMapping{StoreType: "text", StoreTypeBase: "text", Tag: typemap.TagString}
	ntextEntry = &typemap.StoreMapping{StoreType: "ntext", StoreTypeBase: "ntext", Tag: typemap.TagString, Unicode: true}
	xmlEntry   = &typemap.StoreMapping{StoreType: "xml", StoreTypeBase: "xml", Tag: typemap.TagString, Unicode: true}

	fixedBytesEntry = &typemap.StoreMapping{
		StoreType:     "binary",
		StoreTypeBase: "binary",
		Tag:           typemap.TagBytes,
		FixedLength:   true,
		Postfix:       typemap.PostfixSize,
		Comparer:      typemap.BytesComparer{},
	}
	variableBytesEntry = &typemap.StoreMapping{
		StoreType:     "varbinary",
		StoreTypeBase: "varbinary",
		Tag:           typemap.TagBytes,
		Postfix:       typemap.PostfixSize,
		Comparer:      typemap.BytesComparer{},
	}
	maxBytesEntry = &typemap.StoreMapping{
		StoreType:     "varbinary(max)",
		StoreTypeBase: "varbinary",
		Tag:           typemap.TagBytes,
		Postfix:       typemap.PostfixSize,
		Comparer:      typemap.BytesComparer{},
	}
	imageEntry = &typemap.StoreMapping{
		StoreType:     "image",
		StoreTypeBase: "image",
		Tag:           typemap.TagBytes,
		Comparer:      typemap.BytesComparer{},
	}

	// A concurrency token has a fixed 8-byte binary shape.
	rowversionEntry = &typemap.StoreMapping{
		StoreType:     "rowversion",
		StoreTypeBase: "rowversion",
		Tag:           typemap.TagBytes,
		Size:          ip(8),
		FixedLength:   true,
		Comparer:      typemap.BytesComparer{},
	}

	sqlVariantEntry = &typemap.StoreMapping{StoreType: "sql_variant", StoreTypeBase: "sql_variant"}
)

// storeNameEntries maps every canonical and alias store name to its entry.
// Keys must already be in Normalize form.
var storeNameEntries = map[string]*typemap.StoreMapping{
	"bigint":                          bigintEntry,
	"binary varying":                  variableBytesEntry,
	"binary varying(max)":             maxBytesEntry,
	"binary":                          fixedBytesEntry,
	"bit":                             bitEntry,
	"char varying":                    variableAnsiStringEntry,
	"char varying(max)":               maxAnsiStringEntry,
	"char":                            fixedAnsiStringEntry,
	"character varying":               variableAnsiStringEntry,
	"character varying(max)":          maxAnsiStringEntry,
	"character":                       fixedAnsiStringEntry,
	"date":                            dateEntry,
	"datetime":                        datetimeEntry,
	"datetime2":                       datetime2Entry,
	"datetimeoffset":                  datetimeoffsetEntry,
	"dec":                             decimalEntry,
	"decimal":                         decimalEntry,
	"double precision":                doubleEntry,
	"float":                           doubleEntry,
	"image":                           imageEntry,
	"int":                             intEntry,
	"money":                           moneyEntry,
	"national char varying":           variableUnicodeStringEntry,
	"national char varying(max)":      maxUnicodeStringEntry,
	"national character varying":      variableUnicodeStringEntry,
	"national character varying(max)": maxUnicodeStringEntry,
	"national character":              fixedUnicodeStringEntry,
	"nchar":                           fixedUnicodeStringEntry,
	"ntext":                           ntextEntry,
	"numeric":                         decimalEntry,
	"nvarchar":                        variableUnicodeStringEntry,
	"nvarchar(max)":                   maxUnicodeStringEntry,
	"real":                            realEntry,
	"rowversion":                      rowversionEntry,
	"smalldatetime":                   smalldatetimeEntry,
	"smallint":                        smallintEntry,
	"smallmoney":                      smallmoneyEntry,
	"sql_variant":                     sqlVariantEntry,
	"text":                            textEntry,
	"time":                            timeEntry,
	"timestamp":                       rowversionEntry,
	"tinyint":                         tinyintEntry,
	"uniqueidentifier":                uniqueidentifierEntry,
	"varbinary":                       variableBytesEntry,
	"varbinary(max)":                  maxBytesEntry,
	"varchar":                         variableAnsiStringEntry,
	"varchar(max)":                    maxAnsiStringEntry,
	"xml":                             xmlEntry,
}

// tagEntries maps each distinguished value type to its native entry.
//
// String and byte-sequence tags are deliberately absent: text and binary
// values always go through the resolution engine's synthesis path so that
// key sizing and overflow policy apply.
var tagEntries = map[typemap.Tag]*typemap.StoreMapping{
	typemap.TagBool:           bitEntry,
	typemap.TagUint8:          tinyintEntry,
	typemap.TagInt16:          smallintEntry,
	typemap.TagInt32:          intEntry,
	typemap.TagInt64:          bigintEntry,
	typemap.TagFloat32:        realEntry,
	typemap.TagFloat64:        doubleEntry,
	typemap.TagDecimal:        decimalEntry,
	typemap.TagDateTime:       datetime2Entry,
	typemap.TagDate:           dateEntry,
	typemap.TagTimeOfDay:      timeEntry,
	typemap.TagDuration:       timeEntry,
	typemap.TagDateTimeOffset: datetimeoffsetEntry,
	typemap.TagUUID:           uniqueidentifierEntry,
}
