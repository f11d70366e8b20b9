// Package gic models Arm Generic Interrupt Controller interrupt IDs and
// the configuration types shared by the GICv2 and GICv3/4 drivers.
package gic

import "fmt"

// Boundaries of the interrupt ID space (Arm GIC architecture specification).
const (
	sgiStart     uint32 = 0
	ppiStart     uint32 = 16
	spiStart     uint32 = 32
	specialStart uint32 = 1020
	specialEnd   uint32 = 1024
	eppiStart    uint32 = 1056
	eppiEnd      uint32 = 1120
	espiStart    uint32 = 4096
	espiEnd      uint32 = 5120
	lpiStart     uint32 = 8192
)

// Widths of the interrupt categories.
const (
	// SGICount is the number of Software Generated Interrupts.
	SGICount = ppiStart - sgiStart
	// PPICount is the number of (non-extended) Private Peripheral Interrupts.
	PPICount = spiStart - ppiStart
	// MaxSPICount is the maximum number of Shared Peripheral Interrupts
	// which may be supported.
	MaxSPICount = specialStart - spiStart
	// MaxEPPICount is the maximum number of extended Private Peripheral
	// Interrupts which may be supported.
	MaxEPPICount = eppiEnd - eppiStart
	// MaxESPICount is the maximum number of extended Shared Peripheral
	// Interrupts which may be supported.
	MaxESPICount = espiEnd - espiStart
)

// IntID identifies a single interrupt. Conversion to and from the raw
// uint32 value is total and lossless; the constructors additionally
// validate that a zero-based offset fits its category.
type IntID uint32

// Special interrupt IDs. These are only ever produced by an acknowledge
// operation, never constructed or configured.
const (
	// SpecialSecure is returned when running at EL3 and the interrupt
	// should be handled at S-EL2 or S-EL1.
	SpecialSecure IntID = 1020
	// SpecialNonSecure is returned when running at EL3 and the interrupt
	// should be handled at (non-secure) EL2 or EL1.
	SpecialNonSecure IntID = 1021
	// SpecialNMI is returned when the interrupt is a non-maskable
	// interrupt.
	SpecialNMI IntID = 1022
	// SpecialNone is returned when there is no pending interrupt of
	// sufficient priority for the current security state and interrupt
	// group.
	SpecialNone IntID = 1023
)

// SGI returns the interrupt ID for the given Software Generated Interrupt.
func SGI(n uint32) (IntID, error) {
	if n >= SGICount {
		return 0, fmt.Errorf("SGI %d: %w", n, ErrOutOfRange)
	}
	return IntID(sgiStart + n), nil
}

// PPI returns the interrupt ID for the given Private Peripheral Interrupt.
func PPI(n uint32) (IntID, error) {
	if n >= PPICount {
		return 0, fmt.Errorf("PPI %d: %w", n, ErrOutOfRange)
	}
	return IntID(ppiStart + n), nil
}

// SPI returns the interrupt ID for the given Shared Peripheral Interrupt.
func SPI(n uint32) (IntID, error) {
	if n >= MaxSPICount {
		return 0, fmt.Errorf("SPI %d: %w", n, ErrOutOfRange)
	}
	return IntID(spiStart + n), nil
}

// EPPI returns the interrupt ID for the given extended Private Peripheral
// Interrupt.
func EPPI(n uint32) (IntID, error) {
	if n >= MaxEPPICount {
		return 0, fmt.Errorf("EPPI %d: %w", n, ErrOutOfRange)
	}
	return IntID(eppiStart + n), nil
}

// ESPI returns the interrupt ID for the given extended Shared Peripheral
// Interrupt.
func ESPI(n uint32) (IntID, error) {
	if n >= MaxESPICount {
		return 0, fmt.Errorf("ESPI %d: %w", n, ErrOutOfRange)
	}
	return IntID(espiStart + n), nil
}

// LPI returns the interrupt ID for the given Locality-specific Peripheral
// Interrupt.
func LPI(n uint32) (IntID, error) {
	if n > ^uint32(0)-lpiStart {
		return 0, fmt.Errorf("LPI %d: %w", n, ErrOutOfRange)
	}
	return IntID(lpiStart + n), nil
}

// IsSGI reports whether the ID is a Software Generated Interrupt.
func (i IntID) IsSGI() bool {
	return uint32(i) < ppiStart
}

// IsPPI reports whether the ID is a (non-extended) Private Peripheral
// Interrupt.
func (i IntID) IsPPI() bool {
	return ppiStart <= uint32(i) && uint32(i) < spiStart
}

// IsSPI reports whether the ID is a (non-extended) Shared Peripheral
// Interrupt.
func (i IntID) IsSPI() bool {
	return spiStart <= uint32(i) && uint32(i) < specialStart
}

// IsPrivate reports whether the ID is private to a core, i.e. it is an
// SGI, a PPI or an extended PPI.
func (i IntID) IsPrivate() bool {
	return i.IsSGI() || i.IsPPI() || (eppiStart <= uint32(i) && uint32(i) < eppiEnd)
}

// Private returns all interrupt IDs that are private to a core in the
// non-extended ranges, i.e. SGIs and PPIs.
func Private() []IntID {
	ids := make([]IntID, 0, spiStart)
	for n := sgiStart; n < spiStart; n++ {
		ids = append(ids, IntID(n))
	}
	return ids
}

// SPIs returns all interrupt IDs in the non-extended SPI range.
func SPIs() []IntID {
	ids := make([]IntID, 0, MaxSPICount)
	for n := spiStart; n < specialStart; n++ {
		ids = append(ids, IntID(n))
	}
	return ids
}

// String classifies the raw value into its category, including reserved
// gaps between the defined ranges.
func (i IntID) String() string {
	v := uint32(i)
	switch {
	case v < ppiStart:
		return fmt.Sprintf("SGI %d", v-sgiStart)
	case v < spiStart:
		return fmt.Sprintf("PPI %d", v-ppiStart)
	case v < specialStart:
		return fmt.Sprintf("SPI %d", v-spiStart)
	case v < specialEnd:
		return fmt.Sprintf("Special IntID %d", v)
	case v < eppiStart:
		return fmt.Sprintf("Reserved IntID %d", v)
	case v < eppiEnd:
		return fmt.Sprintf("EPPI %d", v-eppiStart)
	case v < espiStart:
		return fmt.Sprintf("Reserved IntID %d", v)
	case v < espiEnd:
		return fmt.Sprintf("ESPI %d", v-espiStart)
	case v < lpiStart:
		return fmt.Sprintf("Reserved IntID %d", v)
	default:
		return fmt.Sprintf("LPI %d", v-lpiStart)
	}
}
