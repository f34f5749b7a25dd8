package catalog

import (
	"fmt"

	"graft/tuple"
)

// UndefinedTableError reports a name with no catalog row. This is the only
// resolution failure a caller can sensibly recover from.
type UndefinedTableError struct {
	Name string
}

func (e *UndefinedTableError) Error() string {
	return fmt.Sprintf("catalog: undefined table %q", e.Name)
}

// BadDataFormatError reports a located row whose expected text field was
// absent or mistyped. Data holds the row's raw bytes for diagnostics.
type BadDataFormatError struct {
	Data []byte
}

func (e *BadDataFormatError) Error() string {
	return fmt.Sprintf("catalog: bad data format (%d byte row)", len(e.Data))
}

// CorruptSchemaError reports an internally inconsistent catalog entry:
// a missing bool/int field, a typing that is not a named tuple, a dangling
// src/dst reference, or a malformed associate.
type CorruptSchemaError struct {
	Reason string
}

func (e *CorruptSchemaError) Error() string {
	return "catalog: corrupt schema: " + e.Reason
}

func corruptf(format string, args ...any) error {
	return &CorruptSchemaError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedKindError reports a row that exists but cannot be resolved as
// a top-level table (assoc rows, indexes and so on).
type UnsupportedKindError struct {
	Kind tuple.DataKind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("catalog: %s entries cannot be resolved as tables", e.Kind)
}
