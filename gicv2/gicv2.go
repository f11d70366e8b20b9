// Package gicv2 implements a driver for the Arm Generic Interrupt
// Controller version 2.
//
// The driver owns the distributor and CPU interface register frames of
// one controller for its whole lifetime. Configuration calls and the
// acknowledge/end-of-interrupt pair issue a fixed, small number of
// register accesses and never block. The driver holds no locks:
// concurrent calls against the same controller require external
// serialization.
package gicv2

import (
	"fmt"

	gic "github.com/google/arm-gic"
	"github.com/google/arm-gic/mmio"
)

// GicV2 is a driver instance for one GICv2 controller.
type GicV2 struct {
	gicd mmio.Device
	gicc mmio.Device
}

// New constructs the driver from the distributor and CPU interface
// frames. The two devices must cover exactly those register blocks,
// mapped as device memory with no other live aliases. Creation is the
// sole trust boundary; there is no teardown protocol.
func New(gicd, gicc mmio.Device) *GicV2 {
	return &GicV2{gicd: gicd, gicc: gicc}
}

// Setup initialises the controller: group 1 is enabled at the
// distributor, every interrupt is placed in group 1, the CPU interface is
// enabled and its priority mask opened to admit all priorities.
//
// The effect is global. Calling Setup for the same controller from two
// cores concurrently requires external serialization.
func (g *GicV2) Setup() {
	g.gicd.Write32(GICD_CTLR, CtlrEnableGrp1)
	for i := uint64(0); i < 32; i++ {
		g.gicd.Write32(GICD_IGROUPR+4*i, 0xffffffff)
	}

	g.gicc.Write32(GICC_CTLR, 0b1)
	g.gicc.Write32(GICC_PMR, 0xff)
}

// Typer returns the interrupt controller type register value. This is a
// pure informational read and may be issued from any core.
func (g *GicV2) Typer() Typer {
	return Typer(g.gicd.Read32(GICD_TYPER))
}

func checkRange(intid gic.IntID) error {
	if !intid.IsSGI() && !intid.IsPPI() && !intid.IsSPI() {
		return fmt.Errorf("%v: %w", intid, gic.ErrOutOfRange)
	}
	return nil
}

// EnableInterrupt enables or disables the interrupt with the given ID.
//
// Enabling verifies that the bit latched by reading the register back; a
// line the hardware does not implement returns gic.ErrNotLatched instead
// of succeeding silently. Disabling is unconditional.
func (g *GicV2) EnableInterrupt(intid gic.IntID, enable bool) error {
	if err := checkRange(intid); err != nil {
		return err
	}
	index := uint64(intid) / 32
	bit := uint32(1) << (uint32(intid) % 32)

	if enable {
		g.gicd.Write32(GICD_ISENABLER+4*index, bit)
		if g.gicd.Read32(GICD_ISENABLER+4*index)&bit == 0 {
			return fmt.Errorf("%v: %w", intid, gic.ErrNotLatched)
		}
		return nil
	}
	g.gicd.Write32(GICD_ICENABLER+4*index, bit)
	return nil
}

// EnableAllInterrupts enables or disables every implemented interrupt, as
// reported by the type register.
func (g *GicV2) EnableAllInterrupts(enable bool) {
	n := uint64(g.Typer().NumIRQs() / 32)
	for i := uint64(0); i < n; i++ {
		if enable {
			g.gicd.Write32(GICD_ISENABLER+4*i, 0xffffffff)
		} else {
			g.gicd.Write32(GICD_ICENABLER+4*i, 0xffffffff)
		}
	}
}

// SetPriorityMask sets the priority mask for the current CPU core. Only
// interrupts with a higher priority (numerically lower) than the mask are
// signalled.
func (g *GicV2) SetPriorityMask(minPriority uint8) {
	g.gicc.Write32(GICC_PMR, uint32(minPriority))
}

// SetInterruptPriority sets the priority of the interrupt with the given
// ID. Lower numbers are higher priorities: 0 is the highest, 255 the
// lowest. The other three interrupts packed into the same register are
// left untouched.
func (g *GicV2) SetInterruptPriority(intid gic.IntID, priority uint8) error {
	if err := checkRange(intid); err != nil {
		return err
	}
	reg := GICD_IPRIORITYR + 4*(uint64(intid)/4)
	shift := 8 * (uint32(intid) % 4)
	v := g.gicd.Read32(reg)
	v = v&^(0xff<<shift) | uint32(priority)<<shift
	g.gicd.Write32(reg, v)
	return nil
}

// SetTrigger configures the trigger type for the interrupt with the given
// ID. Only the interrupt's own configuration bit is rewritten; the paired
// even bit and the other interrupts in the register are preserved.
func (g *GicV2) SetTrigger(intid gic.IntID, trigger gic.Trigger) error {
	if err := checkRange(intid); err != nil {
		return err
	}
	reg := GICD_ICFGR + 4*(uint64(intid)/16)
	bit := uint32(1) << ((uint32(intid)%16)*2 + 1)

	v := g.gicd.Read32(reg)
	switch trigger {
	case gic.Edge:
		v |= bit
	case gic.Level:
		v &^= bit
	default:
		return fmt.Errorf("trigger %v: %w", trigger, gic.ErrOutOfRange)
	}
	g.gicd.Write32(reg, v)
	return nil
}

// SendSGI sends a software-generated interrupt to the given cores.
func (g *GicV2) SendSGI(intid gic.IntID, target SgiTarget) error {
	if !intid.IsSGI() {
		return fmt.Errorf("%v is not an SGI: %w", intid, gic.ErrOutOfRange)
	}

	var value uint32
	if target.broadcast {
		value = uint32(intid)&0xf | 0xff<<16
	} else {
		if target.filter > SgiFilterSelfOnly {
			return fmt.Errorf("SGI target filter %d: %w", target.filter, gic.ErrOutOfRange)
		}
		value = uint32(intid)&0xf |
			uint32(target.filter)<<24 |
			uint32(target.list)<<16 |
			1<<15
	}
	g.gicd.Write32(GICD_SGIR, value)
	return nil
}

// GetAndAcknowledgeInterrupt returns the ID of the highest priority
// signalled group 1 interrupt and acknowledges it, raising the running
// priority and marking the interrupt active. It returns false if there is
// no pending interrupt of sufficient priority.
//
// Every acknowledged interrupt must be paired with exactly one
// EndInterrupt call on the same core.
func (g *GicV2) GetAndAcknowledgeInterrupt() (gic.IntID, bool) {
	intid := gic.IntID(g.gicc.Read32(GICC_AIAR) & 0x3ff)
	if intid == gic.SpecialNone {
		return 0, false
	}
	return intid, true
}

// EndInterrupt informs the controller that the CPU has completed
// processing the given interrupt, dropping its priority and deactivating
// it. Calling it with an ID that was not acknowledged on this core is a
// contract violation the hardware does not detect.
func (g *GicV2) EndInterrupt(intid gic.IntID) {
	g.gicc.Write32(GICC_AEOIR, uint32(intid))
}

// GicdPtr returns the raw distributor frame. Using it bypasses every
// guarantee the driver makes; the caller takes over the ownership
// discipline.
func (g *GicV2) GicdPtr() mmio.Device {
	return g.gicd
}

// GiccPtr returns the raw CPU interface frame, with the same caveats as
// GicdPtr.
func (g *GicV2) GiccPtr() mmio.Device {
	return g.gicc
}

// SgiTargetFilter selects which cores an SGI with an explicit target is
// forwarded to.
type SgiTargetFilter uint8

const (
	// SgiFilterTargetList forwards to the cores named in the target list.
	SgiFilterTargetList SgiTargetFilter = 0b00
	// SgiFilterOthersOnly forwards to every core but the sender.
	SgiFilterOthersOnly SgiTargetFilter = 0b01
	// SgiFilterSelfOnly forwards to the sending core only.
	SgiFilterSelfOnly SgiTargetFilter = 0b10
)

// SgiTarget is the target specification for a software-generated
// interrupt.
type SgiTarget struct {
	broadcast bool
	filter    SgiTargetFilter
	list      uint8
}

// SgiTargetAll routes the SGI to all CPU cores except the sender.
func SgiTargetAll() SgiTarget {
	return SgiTarget{broadcast: true}
}

// SgiTargetList routes the SGI according to the forwarding filter and, for
// SgiFilterTargetList, the 8-bit core bitmask.
func SgiTargetList(filter SgiTargetFilter, list uint8) SgiTarget {
	return SgiTarget{filter: filter, list: list}
}
