package shaderstd

import "fmt"

// ScalarType is the component type of a vertex attribute in its buffer.
type ScalarType uint8

const (
	Float ScalarType = iota + 1
	Int
	UnsignedInt
	Byte
	UnsignedByte
	Short
	UnsignedShort
)

var scalarTypeNames = [...]string{
	Float:         "float",
	Int:           "int",
	UnsignedInt:   "unsigned_int",
	Byte:          "byte",
	UnsignedByte:  "unsigned_byte",
	Short:         "short",
	UnsignedShort: "unsigned_short",
}

var scalarTypeSizes = [...]int{
	Float:         4,
	Int:           4,
	UnsignedInt:   4,
	Byte:          1,
	UnsignedByte:  1,
	Short:         2,
	UnsignedShort: 2,
}

func (s ScalarType) String() string {
	if int(s) < len(scalarTypeNames) && scalarTypeNames[s] != "" {
		return scalarTypeNames[s]
	}
	return fmt.Sprintf("ScalarType(%d)", uint8(s))
}

// Size returns the size of one component in bytes, or 0 for an unknown type.
func (s ScalarType) Size() int {
	if int(s) < len(scalarTypeSizes) {
		return scalarTypeSizes[s]
	}
	return 0
}

// Integral reports whether the type must be bound as an integer attribute
// rather than converted to floating point.
func (s ScalarType) Integral() bool {
	return s != Float && s.Size() > 0
}

// Layout describes how one vertex attribute is laid out in a vertex buffer.
// Stride 0 means tightly packed.
type Layout struct {
	Components int        `yaml:"components"`
	Type       ScalarType `yaml:"type"`
	Normalize  bool       `yaml:"normalize"`
	Stride     int        `yaml:"stride"`
	Offset     int        `yaml:"offset"`
}

// ElementSize returns the byte size of one attribute value.
func (l Layout) ElementSize() int {
	return l.Components * l.Type.Size()
}

func (l Layout) validate() error {
	if l.Components < 1 || l.Components > 4 {
		return fmt.Errorf("components %d out of range 1..4", l.Components)
	}
	if l.Type.Size() == 0 {
		return fmt.Errorf("unknown component type %d", uint8(l.Type))
	}
	if l.Normalize && l.Type == Float {
		return fmt.Errorf("normalize set on float components")
	}
	if l.Stride < 0 || l.Offset < 0 {
		return fmt.Errorf("negative stride or offset")
	}
	if l.Stride != 0 && l.Offset+l.ElementSize() > l.Stride {
		return fmt.Errorf("offset %d + size %d exceeds stride %d", l.Offset, l.ElementSize(), l.Stride)
	}
	return nil
}

// MarshalText encodes the type by name.
func (s ScalarType) MarshalText() ([]byte, error) {
	if s.Size() == 0 {
		return nil, fmt.Errorf("unknown component type %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a type name written by MarshalText.
func (s *ScalarType) UnmarshalText(text []byte) error {
	for i, name := range scalarTypeNames {
		if name != "" && name == string(text) {
			*s = ScalarType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown component type %q", text)
}
