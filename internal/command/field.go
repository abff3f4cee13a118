package command

import (
	"strings"

	"taskbot/internal/db/task"
)

// Field enumerates the task columns a user may change through /update_task.
// Each field knows its storage column and how to normalize a raw value.
type Field int

const (
	FieldName Field = iota
	FieldTime
	FieldDate
	FieldProgress
)

// fieldLabels is the fixed set of human field labels users type in commands.
// Matching is case-insensitive.
var fieldLabels = map[string]Field{
	"задача":   FieldName,
	"название": FieldName,
	"время":    FieldTime,
	"дата":     FieldDate,
	"прогресс": FieldProgress,
}

// ResolveField maps a human label to its field, or returns an
// UnsupportedFieldError carrying the offending label.
func ResolveField(label string) (Field, error) {
	f, ok := fieldLabels[strings.ToLower(label)]
	if !ok {
		return 0, &UnsupportedFieldError{Label: label}
	}
	return f, nil
}

func (f Field) Column() string {
	switch f {
	case FieldTime:
		return task.ColumnTimeEnd
	case FieldDate:
		return task.ColumnDateEnd
	case FieldProgress:
		return task.ColumnProgress
	default:
		return task.ColumnName
	}
}

// Normalize validates and converts a raw value for this field: dates and
// times are reshaped to their storage form, everything else passes through.
func (f Field) Normalize(value string) (string, error) {
	switch f {
	case FieldDate:
		return ParseDate(value)
	case FieldTime:
		return ParseTime(value)
	default:
		return value, nil
	}
}
