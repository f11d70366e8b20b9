package gicv2

import "github.com/google/arm-gic/mmio"

// GIC Distributor register offsets (GICv2)
const (
	GICD_CTLR       = 0x0000 // Distributor Control Register
	GICD_TYPER      = 0x0004 // Interrupt Controller Type Register
	GICD_IIDR       = 0x0008 // Distributor Implementer Identification Register
	GICD_IGROUPR    = 0x0080 // Interrupt Group Registers (32)
	GICD_ISENABLER  = 0x0100 // Interrupt Set-Enable Registers (32)
	GICD_ICENABLER  = 0x0180 // Interrupt Clear-Enable Registers (32)
	GICD_ISPENDR    = 0x0200 // Interrupt Set-Pending Registers (32)
	GICD_ICPENDR    = 0x0280 // Interrupt Clear-Pending Registers (32)
	GICD_ISACTIVER  = 0x0300 // Interrupt Set-Active Registers (32)
	GICD_ICACTIVER  = 0x0380 // Interrupt Clear-Active Registers (32)
	GICD_IPRIORITYR = 0x0400 // Interrupt Priority Registers (256, 4 interrupts each)
	GICD_ITARGETSR  = 0x0800 // Interrupt Processor Targets Registers (256)
	GICD_ICFGR      = 0x0C00 // Interrupt Configuration Registers (64, 2 bits per interrupt)
	GICD_SGIR       = 0x0F00 // Software Generated Interrupt Register

	// DistributorSize is the size of the distributor register frame.
	DistributorSize = 0x1000
)

// GIC CPU interface register offsets (GICv2)
const (
	GICC_CTLR   = 0x0000 // CPU Interface Control Register
	GICC_PMR    = 0x0004 // Interrupt Priority Mask Register
	GICC_BPR    = 0x0008 // Binary Point Register
	GICC_IAR    = 0x000C // Interrupt Acknowledge Register
	GICC_EOIR   = 0x0010 // End of Interrupt Register
	GICC_RPR    = 0x0014 // Running Priority Register
	GICC_HPPIR  = 0x0018 // Highest Priority Pending Interrupt Register
	GICC_ABPR   = 0x001C // Aliased Binary Point Register
	GICC_AIAR   = 0x0020 // Aliased Interrupt Acknowledge Register
	GICC_AEOIR  = 0x0024 // Aliased End of Interrupt Register
	GICC_AHPPIR = 0x0028 // Aliased Highest Priority Pending Interrupt Register
	GICC_IIDR   = 0x00FC // CPU Interface Identification Register
	GICC_DIR    = 0x1000 // Deactivate Interrupt Register

	// CPUInterfaceSize is the size of the CPU interface register frame.
	CPUInterfaceSize = 0x2000
)

// Distributor control register bits (GICD_CTLR)
const (
	CtlrEnableGrp0 uint32 = 1 << 0
	CtlrEnableGrp1 uint32 = 1 << 1
)

// Typer is the value of the interrupt controller type register
// (GICD_TYPER). Reading it has no side effects, so it may be shared
// read-only across cores.
type Typer uint32

// NumIRQs returns the maximum number of interrupts supported, derived
// from the ITLinesNumber field.
func (t Typer) NumIRQs() uint32 {
	return ((uint32(t) & 0b11111) + 1) * 32
}

// CPUCount returns the number of implemented CPU interfaces.
func (t Typer) CPUCount() uint32 {
	return ((uint32(t) >> 5) & 0b111) + 1
}

// HasSecurityExtension reports whether the GIC implements two security
// states.
func (t Typer) HasSecurityExtension() bool {
	return uint32(t)&(1<<10) != 0
}

// LockableSPICount returns the maximum number of lockable SPIs, from 0 to
// 31.
func (t Typer) LockableSPICount() uint32 {
	return (uint32(t) >> 11) & 0b11111
}

// DistributorLayout describes the distributor frame byte-exactly:
// offsets, widths and access modes, with the gaps reserved.
func DistributorLayout() *mmio.Layout {
	return mmio.NewLayout("GICv2 distributor", DistributorSize, []mmio.Field{
		{Name: "GICD_CTLR", Offset: GICD_CTLR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICD_TYPER", Offset: GICD_TYPER, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICD_IIDR", Offset: GICD_IIDR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICD_IGROUPR", Offset: GICD_IGROUPR, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ISENABLER", Offset: GICD_ISENABLER, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ICENABLER", Offset: GICD_ICENABLER, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ISPENDR", Offset: GICD_ISPENDR, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ICPENDR", Offset: GICD_ICPENDR, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ISACTIVER", Offset: GICD_ISACTIVER, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ICACTIVER", Offset: GICD_ICACTIVER, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_IPRIORITYR", Offset: GICD_IPRIORITYR, Width: 4, Count: 256, Access: mmio.ReadWrite},
		{Name: "GICD_ITARGETSR", Offset: GICD_ITARGETSR, Width: 4, Count: 256, Access: mmio.ReadWrite},
		{Name: "GICD_ICFGR", Offset: GICD_ICFGR, Width: 4, Count: 64, Access: mmio.ReadWrite},
		{Name: "GICD_SGIR", Offset: GICD_SGIR, Width: 4, Count: 1, Access: mmio.WriteOnly},
	})
}

// CPUInterfaceLayout describes the CPU interface frame byte-exactly.
func CPUInterfaceLayout() *mmio.Layout {
	return mmio.NewLayout("GICv2 CPU interface", CPUInterfaceSize, []mmio.Field{
		{Name: "GICC_CTLR", Offset: GICC_CTLR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICC_PMR", Offset: GICC_PMR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICC_BPR", Offset: GICC_BPR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICC_IAR", Offset: GICC_IAR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICC_EOIR", Offset: GICC_EOIR, Width: 4, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICC_RPR", Offset: GICC_RPR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICC_HPPIR", Offset: GICC_HPPIR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICC_ABPR", Offset: GICC_ABPR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICC_AIAR", Offset: GICC_AIAR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICC_AEOIR", Offset: GICC_AEOIR, Width: 4, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICC_AHPPIR", Offset: GICC_AHPPIR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICC_IIDR", Offset: GICC_IIDR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICC_DIR", Offset: GICC_DIR, Width: 4, Count: 1, Access: mmio.WriteOnly},
	})
}
