// types.go - tagged variants for sync pulse classification and field parity
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

package video

// SyncKind classifies a completed low (sync) run by its temporal width.
type SyncKind int

const (
	SyncUnknown SyncKind = iota
	SyncHorizontal
	SyncVerticalShort
	SyncVerticalBroad
)

func (k SyncKind) String() string {
	switch k {
	case SyncHorizontal:
		return "Horizontal"
	case SyncVerticalShort:
		return "VerticalShort"
	case SyncVerticalBroad:
		return "VerticalBroad"
	default:
		return "Unknown"
	}
}

// Field identifies one of the two interlaced halves of a frame.
type Field int

const (
	FieldUnknown Field = iota
	FieldOdd
	FieldEven
)

func (f Field) String() string {
	switch f {
	case FieldOdd:
		return "Odd"
	case FieldEven:
		return "Even"
	default:
		return "Unknown"
	}
}
