// Package platform describes where a board maps its interrupt
// controller. Board descriptions are loaded from YAML so firmware images
// can target several boards from one binary, and well-known boards ship
// as builtins.
package platform

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Board names the machine and the register frames of its interrupt
// controller. Exactly one controller version must be present.
type Board struct {
	Name  string `yaml:"name"`
	GICv2 *GICv2 `yaml:"gicv2,omitempty"`
	GICv3 *GICv3 `yaml:"gicv3,omitempty"`
}

// GICv2 locates the two register frames of a GICv2 controller.
type GICv2 struct {
	DistributorBase  HexUint64 `yaml:"distributor_base"`
	CPUInterfaceBase HexUint64 `yaml:"cpu_interface_base"`
}

// GICv3 locates the register frames of a GICv3 or GICv4 controller.
type GICv3 struct {
	DistributorBase   HexUint64 `yaml:"distributor_base"`
	RedistributorBase HexUint64 `yaml:"redistributor_base"`
	// Cores is the number of redistributor frames.
	Cores int `yaml:"cores"`
	// Stride is the distance in bytes between redistributor frames. Zero
	// means probe it from the first frame's type register.
	Stride HexUint64 `yaml:"stride,omitempty"`
}

// HexUint64 wraps uint64 for YAML unmarshaling. Values may be written as
// decimal or as 0x-prefixed hexadecimal strings, which is how hardware
// documentation spells addresses.
type HexUint64 uint64

// UnmarshalYAML implements yaml.Unmarshaler for HexUint64.
func (h *HexUint64) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid address node kind %d", value.Kind)
	}
	s := value.Value
	if s == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", s, err)
	}
	*h = HexUint64(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for HexUint64, rendering the
// value in hexadecimal.
func (h HexUint64) MarshalYAML() (any, error) {
	return fmt.Sprintf("%#x", uint64(h)), nil
}

// Parse decodes and validates a board description.
func Parse(data []byte) (*Board, error) {
	var board Board
	if err := yaml.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("parsing board description: %w", err)
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return &board, nil
}

// Load reads and parses a board description file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board description: %w", err)
	}
	board, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return board, nil
}

// Validate checks that the description names a board and exactly one
// fully specified controller.
func (b *Board) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("board has no name")
	}
	switch {
	case b.GICv2 == nil && b.GICv3 == nil:
		return fmt.Errorf("board %q: no interrupt controller", b.Name)
	case b.GICv2 != nil && b.GICv3 != nil:
		return fmt.Errorf("board %q: both gicv2 and gicv3 specified", b.Name)
	case b.GICv2 != nil:
		if b.GICv2.DistributorBase == 0 || b.GICv2.CPUInterfaceBase == 0 {
			return fmt.Errorf("board %q: gicv2 frame base missing", b.Name)
		}
	case b.GICv3 != nil:
		if b.GICv3.DistributorBase == 0 || b.GICv3.RedistributorBase == 0 {
			return fmt.Errorf("board %q: gicv3 frame base missing", b.Name)
		}
		if b.GICv3.Cores <= 0 {
			return fmt.Errorf("board %q: core count %d", b.Name, b.GICv3.Cores)
		}
		if b.GICv3.Stride%0x10000 != 0 {
			return fmt.Errorf("board %q: stride %#x is not 64KB aligned", b.Name, uint64(b.GICv3.Stride))
		}
	}
	return nil
}

// QEMUVirtV2 describes the QEMU virt machine with its default GICv2.
func QEMUVirtV2() *Board {
	return &Board{
		Name: "qemu-virt-gicv2",
		GICv2: &GICv2{
			DistributorBase:  0x08000000,
			CPUInterfaceBase: 0x08010000,
		},
	}
}

// QEMUVirtV3 describes the QEMU virt machine started with gic-version=3.
func QEMUVirtV3(cores int) *Board {
	return &Board{
		Name: "qemu-virt-gicv3",
		GICv3: &GICv3{
			DistributorBase:   0x08000000,
			RedistributorBase: 0x080A0000,
			Cores:             cores,
			Stride:            0x20000,
		},
	}
}
