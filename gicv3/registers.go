package gicv3

import (
	gic "github.com/google/arm-gic"
	"github.com/google/arm-gic/mmio"
)

// GIC Distributor register offsets (GICv3/4)
const (
	GICD_CTLR       = 0x0000 // Distributor Control Register
	GICD_TYPER      = 0x0004 // Interrupt Controller Type Register
	GICD_IIDR       = 0x0008 // Distributor Implementer Identification Register
	GICD_TYPER2     = 0x000C // Interrupt Controller Type Register 2
	GICD_STATUSR    = 0x0010 // Error Reporting Status Register
	GICD_SETSPI_NSR = 0x0040 // Set SPI Register (Non-secure)
	GICD_CLRSPI_NSR = 0x0048 // Clear SPI Register (Non-secure)
	GICD_SETSPI_SR  = 0x0050 // Set SPI Register (Secure)
	GICD_CLRSPI_SR  = 0x0058 // Clear SPI Register (Secure)
	GICD_IGROUPR    = 0x0080 // Interrupt Group Registers (32)
	GICD_ISENABLER  = 0x0100 // Interrupt Set-Enable Registers (32)
	GICD_ICENABLER  = 0x0180 // Interrupt Clear-Enable Registers (32)
	GICD_ISPENDR    = 0x0200 // Interrupt Set-Pending Registers (32)
	GICD_ICPENDR    = 0x0280 // Interrupt Clear-Pending Registers (32)
	GICD_ISACTIVER  = 0x0300 // Interrupt Set-Active Registers (32)
	GICD_ICACTIVER  = 0x0380 // Interrupt Clear-Active Registers (32)
	GICD_IPRIORITYR = 0x0400 // Interrupt Priority Registers (256, 4 interrupts each)
	GICD_ITARGETSR  = 0x0800 // Interrupt Processor Targets Registers (GICv2 compatibility)
	GICD_ICFGR      = 0x0C00 // Interrupt Configuration Registers (64)
	GICD_IGRPMODR   = 0x0D00 // Interrupt Group Modifier Registers (32)
	GICD_NSACR      = 0x0E00 // Non-secure Access Control Registers (64)
	GICD_SGIR       = 0x0F00 // Software Generated Interrupt Register (GICv2 compatibility)
	GICD_CPENDSGIR  = 0x0F10 // SGI Clear-Pending Registers (4)
	GICD_SPENDSGIR  = 0x0F20 // SGI Set-Pending Registers (4)
	GICD_INMIR      = 0x0F80 // Non-maskable Interrupt Registers (32)

	// Extended SPI range
	GICD_IGROUPR_E    = 0x1000 // Interrupt Group Registers, extended (32)
	GICD_ISENABLER_E  = 0x1200 // Interrupt Set-Enable Registers, extended (32)
	GICD_ICENABLER_E  = 0x1400 // Interrupt Clear-Enable Registers, extended (32)
	GICD_ISPENDR_E    = 0x1600 // Interrupt Set-Pending Registers, extended (32)
	GICD_ICPENDR_E    = 0x1800 // Interrupt Clear-Pending Registers, extended (32)
	GICD_ISACTIVER_E  = 0x1A00 // Interrupt Set-Active Registers, extended (32)
	GICD_ICACTIVER_E  = 0x1C00 // Interrupt Clear-Active Registers, extended (32)
	GICD_IPRIORITYR_E = 0x2000 // Interrupt Priority Registers, extended (256)
	GICD_ICFGR_E      = 0x3000 // Interrupt Configuration Registers, extended (64)
	GICD_IGRPMODR_E   = 0x3400 // Interrupt Group Modifier Registers, extended (32)
	GICD_NSACR_E      = 0x3600 // Non-secure Access Control Registers, extended (32)
	GICD_INMIR_E      = 0x3B00 // Non-maskable Interrupt Registers, extended (32)

	GICD_IROUTER   = 0x6100 // Interrupt Routing Registers, 64-bit, for SPIs 32..1019
	GICD_IROUTER_E = 0x8000 // Interrupt Routing Registers, extended (1024, 64-bit)
	GICD_IDREGS    = 0xFFD0 // ID registers (12)
	GICD_PIDR2     = 0xFFE8 // Peripheral ID 2

	// DistributorSize is the size of the distributor register frame.
	DistributorSize = 0x10000
)

// GIC Redistributor register offsets (RD_base, first 64KB of each frame)
const (
	GICR_CTLR      = 0x0000 // Redistributor Control Register
	GICR_IIDR      = 0x0004 // Implementer Identification Register
	GICR_TYPER     = 0x0008 // Redistributor Type Register (64-bit)
	GICR_STATUSR   = 0x0010 // Error Reporting Status Register
	GICR_WAKER     = 0x0014 // Redistributor Wake Register
	GICR_MPAMIDR   = 0x0018 // Report Maximum PARTID and PMG Register
	GICR_PARTIDR   = 0x001C // Set PARTID and PMG Register
	GICR_PWRR      = 0x0024 // Power Register (GIC-600 and GIC-700 only)
	GICR_SETLPIR   = 0x0040 // Set LPI Pending Register (64-bit)
	GICR_CLRLPIR   = 0x0048 // Clear LPI Pending Register (64-bit)
	GICR_PROPBASER = 0x0070 // LPI Configuration Table Base Address Register (64-bit)
	GICR_PENDBASER = 0x0078 // LPI Pending Table Base Address Register (64-bit)
	GICR_INVLPIR   = 0x00A0 // Invalidate LPI Register (64-bit)
	GICR_INVALLR   = 0x00B0 // Invalidate All Register (64-bit)
	GICR_SYNCR     = 0x00C0 // Synchronize Register
	GICR_IDREGS    = 0xFFD0 // ID registers (12)
	GICR_PIDR2     = 0xFFE8 // Peripheral ID 2
)

// SGI and PPI register offsets (SGI_base, second 64KB of each frame)
const (
	GICR_IGROUPR0     = 0x0080 // Interrupt Group Register 0
	GICR_IGROUPR_E    = 0x0084 // Interrupt Group Registers, extended PPI (2)
	GICR_ISENABLER0   = 0x0100 // Interrupt Set-Enable Register 0
	GICR_ISENABLER_E  = 0x0104 // Interrupt Set-Enable Registers, extended PPI (2)
	GICR_ICENABLER0   = 0x0180 // Interrupt Clear-Enable Register 0
	GICR_ICENABLER_E  = 0x0184 // Interrupt Clear-Enable Registers, extended PPI (2)
	GICR_ISPENDR0     = 0x0200 // Interrupt Set-Pending Register 0
	GICR_ISPENDR_E    = 0x0204 // Interrupt Set-Pending Registers, extended PPI (2)
	GICR_ICPENDR0     = 0x0280 // Interrupt Clear-Pending Register 0
	GICR_ICPENDR_E    = 0x0284 // Interrupt Clear-Pending Registers, extended PPI (2)
	GICR_ISACTIVER0   = 0x0300 // Interrupt Set-Active Register 0
	GICR_ISACTIVER_E  = 0x0304 // Interrupt Set-Active Registers, extended PPI (2)
	GICR_ICACTIVER0   = 0x0380 // Interrupt Clear-Active Register 0
	GICR_ICACTIVER_E  = 0x0384 // Interrupt Clear-Active Registers, extended PPI (2)
	GICR_IPRIORITYR   = 0x0400 // Interrupt Priority Registers (8, 4 interrupts each)
	GICR_IPRIORITYR_E = 0x0420 // Interrupt Priority Registers, extended PPI (16)
	GICR_ICFGR        = 0x0C00 // SGI, PPI and extended PPI Configuration Registers (6)
	GICR_IGRPMODR0    = 0x0D00 // Interrupt Group Modifier Register 0
	GICR_IGRPMODR_E   = 0x0D04 // Interrupt Group Modifier Registers, extended PPI (2)
	GICR_NSACR        = 0x0E00 // Non-secure Access Control Register
	GICR_INMIR0       = 0x0F80 // Non-maskable Interrupt Register for PPIs
	GICR_INMIR_E      = 0x0F84 // Non-maskable Interrupt Registers, extended PPI (31)
)

// Redistributor frame geometry. Each core owns one frame of RD_base plus
// SGI_base; GICv4 adds two more 64KB pages for virtual LPIs, doubling the
// stride between frames.
const (
	// SGIOffset is the offset in bytes from RD_base to SGI_base.
	SGIOffset = 0x10000
	// FrameSize is the size of one 64KB register page.
	FrameSize = 0x10000
	// StridePhysical is the distance between redistributor frames without
	// virtual LPI support.
	StridePhysical = 2 * FrameSize
	// StrideVirtual is the distance between redistributor frames with
	// virtual LPI support.
	StrideVirtual = 4 * FrameSize
)

// GicdCtlr is the value of the distributor control register (GICD_CTLR).
type GicdCtlr uint32

// Distributor control register bits.
const (
	GicdCtlrRWP          GicdCtlr = 1 << 31 // register write pending
	GicdCtlrNASSGIreq    GicdCtlr = 1 << 8
	GicdCtlrE1NWF        GicdCtlr = 1 << 7
	GicdCtlrDS           GicdCtlr = 1 << 6
	GicdCtlrARE_NS       GicdCtlr = 1 << 5
	GicdCtlrARE_S        GicdCtlr = 1 << 4
	GicdCtlrEnableGrp1S  GicdCtlr = 1 << 2
	GicdCtlrEnableGrp1NS GicdCtlr = 1 << 1
	GicdCtlrEnableGrp0   GicdCtlr = 1 << 0
)

// GicrCtlr is the value of the redistributor control register (GICR_CTLR).
type GicrCtlr uint32

// Redistributor control register bits.
const (
	GicrCtlrUWP        GicrCtlr = 1 << 31 // upstream write pending
	GicrCtlrDPG1S      GicrCtlr = 1 << 26
	GicrCtlrDPG1NS     GicrCtlr = 1 << 25
	GicrCtlrDPG0       GicrCtlr = 1 << 24
	GicrCtlrRWP        GicrCtlr = 1 << 3
	GicrCtlrIR         GicrCtlr = 1 << 2
	GicrCtlrCES        GicrCtlr = 1 << 1
	GicrCtlrEnableLPIs GicrCtlr = 1 << 0
)

// Waker is the value of the redistributor wake register (GICR_WAKER).
type Waker uint32

// Wake register bits. ProcessorSleep is the request bit; ChildrenAsleep is
// the hardware's acknowledgment.
const (
	WakerChildrenAsleep Waker = 1 << 2
	WakerProcessorSleep Waker = 1 << 1
)

// GicrPwrr is the value of the redistributor power register (GICR_PWRR),
// implemented on GIC-600 and GIC-700 only.
type GicrPwrr uint32

// Power register bits.
const (
	// GicrPwrrRDGPO indicates it is safe to power down the GIC cluster
	// interface.
	GicrPwrrRDGPO GicrPwrr = 1 << 3
	// GicrPwrrRDGPD is the intended power state of the cluster interface;
	// the state is reached when RDGPD equals RDGPO.
	GicrPwrrRDGPD GicrPwrr = 1 << 2
	// GicrPwrrRDAG applies the RDPD value to every redistributor on the
	// same cluster interface.
	GicrPwrrRDAG GicrPwrr = 1 << 1
	// GicrPwrrRDPD permits the redistributor to be powered down.
	GicrPwrrRDPD GicrPwrr = 1 << 0
)

// PowerStateReached reports whether the cluster interface has reached the
// power state requested through RDGPD.
func (p GicrPwrr) PowerStateReached() bool {
	return (p&GicrPwrrRDGPD != 0) == (p&GicrPwrrRDGPO != 0)
}

// GicrIidr is the value of the redistributor implementer identification
// register (GICR_IIDR).
type GicrIidr uint32

// Model IDs as returned by GicrIidr.ModelID.
const (
	ModelIDArmGIC600   uint32 = 0x0200043b
	ModelIDArmGIC600AE uint32 = 0x0300043b
	ModelIDArmGIC700   uint32 = 0x0400043b
)

// ModelID returns the product and implementer identity of the
// redistributor.
func (i GicrIidr) ModelID() uint32 {
	const productIDMask = 0xff << 24
	const implementerMask = 0xfff
	return uint32(i) & (productIDMask | implementerMask)
}

// Typer is the value of the interrupt controller type register
// (GICD_TYPER).
type Typer uint32

// espiRange returns the value of the ESPI_range field.
func (t Typer) espiRange() uint32 {
	return uint32(t) >> 27
}

// MaxESPI returns the highest supported extended SPI interrupt ID.
func (t Typer) MaxESPI() gic.IntID {
	id, _ := gic.ESPI(32*t.espiRange() + 31)
	return id
}

// RangeSelectorSupport describes the affinity level 0 values usable for
// targeted SGIs.
type RangeSelectorSupport int

const (
	// AffZero16 supports targeted SGIs with affinity level 0 values up
	// to 15.
	AffZero16 RangeSelectorSupport = iota
	// AffZero256 supports targeted SGIs with affinity level 0 values up
	// to 255.
	AffZero256
)

// RangeSelector returns the range of affinity level 0 values supported
// for targeted SGIs.
func (t Typer) RangeSelector() RangeSelectorSupport {
	if uint32(t)&(1<<26) == 0 {
		return AffZero16
	}
	return AffZero256
}

// OneOfNSupported reports whether 1 of N SPI routing is supported.
func (t Typer) OneOfNSupported() bool {
	return uint32(t)&(1<<25) == 0
}

// Affinity3Supported reports whether nonzero affinity level 3 values are
// supported.
func (t Typer) Affinity3Supported() bool {
	return uint32(t)&(1<<24) != 0
}

// IDBits returns the number of interrupt ID bits supported.
func (t Typer) IDBits() uint32 {
	return ((uint32(t) >> 19) & 0b11111) + 1
}

// DVISupported reports whether direct virtual LPI injection is supported.
func (t Typer) DVISupported() bool {
	return uint32(t)&(1<<18) != 0
}

// LPISSupported reports whether LPIs are supported.
func (t Typer) LPISSupported() bool {
	return uint32(t)&(1<<17) != 0
}

// MBISSupported reports whether message-based interrupts are supported.
func (t Typer) MBISSupported() bool {
	return uint32(t)&(1<<16) != 0
}

// NumLPIs returns the number of LPIs supported. When the num_LPIs field
// is zero the count is derived from the ID bit width instead.
func (t Typer) NumLPIs() uint32 {
	n := (uint32(t) >> 11) & 0b11111
	if n == 0 {
		span := uint64(1) << t.IDBits()
		if span <= 8192 {
			return 0
		}
		return uint32(span - 8192)
	}
	return 2 << n
}

// HasSecurityExtension reports whether the GIC implements two security
// states.
func (t Typer) HasSecurityExtension() bool {
	return uint32(t)&(1<<10) != 0
}

// NMISupported reports whether the non-maskable interrupt property is
// supported.
func (t Typer) NMISupported() bool {
	return uint32(t)&(1<<9) != 0
}

// ESPISupported reports whether the extended SPI range is implemented.
func (t Typer) ESPISupported() bool {
	return uint32(t)&(1<<8) != 0
}

// NumCPUs returns the number of CPU cores supported when affinity routing
// is disabled.
func (t Typer) NumCPUs() uint32 {
	return (uint32(t) >> 5) & 0b111
}

// NumSPIs returns the number of SPIs supported.
func (t Typer) NumSPIs() uint32 {
	itLines := uint32(t) & 0b11111
	n := 32 * itLines
	if n > gic.MaxSPICount {
		return gic.MaxSPICount
	}
	return n
}

// GicrTyper is the value of the redistributor type register (GICR_TYPER).
type GicrTyper uint64

// affinityValue returns the affinity levels 0 to 3 of the PE associated
// with this redistributor.
func (t GicrTyper) affinityValue() [4]uint8 {
	aff := uint32(uint64(t) >> 32)
	return [4]uint8{uint8(aff), uint8(aff >> 8), uint8(aff >> 16), uint8(aff >> 24)}
}

// CoreMPIDR returns the MPIDR value of the corresponding core, used to
// discover redistributor order with respect to the chosen linear core ID.
func (t GicrTyper) CoreMPIDR() uint64 {
	aff := t.affinityValue()
	return uint64(aff[0]) | uint64(aff[1])<<8 | uint64(aff[2])<<16 | uint64(aff[3])<<32
}

// MaxEPPICount returns the maximum number of extended PPI interrupt IDs
// supported.
func (t GicrTyper) MaxEPPICount() uint32 {
	return 32 * uint32((uint64(t)>>27)&0b11111)
}

// ProcessorNumber returns a unique ID for the PE associated with this
// redistributor.
func (t GicrTyper) ProcessorNumber() uint16 {
	return uint16(uint64(t) >> 8)
}

// MPAMSupported reports whether MPAM is supported.
func (t GicrTyper) MPAMSupported() bool {
	return uint64(t)&(1<<6) != 0
}

// DisableProcessorGroupSupported reports whether the redistributor
// supports disabling processor groups.
func (t GicrTyper) DisableProcessorGroupSupported() bool {
	return uint64(t)&(1<<5) != 0
}

// LastRedistributor reports whether this is the last redistributor on the
// chip.
func (t GicrTyper) LastRedistributor() bool {
	return uint64(t)&(1<<4) != 0
}

// DirectLPIsSupported reports whether direct injection of LPIs is
// supported.
func (t GicrTyper) DirectLPIsSupported() bool {
	return uint64(t)&(1<<3) != 0
}

// DirtySupported reports whether VPENDBASER.Dirty is supported.
func (t GicrTyper) DirtySupported() bool {
	return uint64(t)&(1<<2) != 0
}

// VirtualLPIsSupported reports whether virtual LPIs are supported. When
// they are, each redistributor frame carries two extra 64KB pages.
func (t GicrTyper) VirtualLPIsSupported() bool {
	return uint64(t)&(1<<1) != 0
}

// PhysicalLPIsSupported reports whether physical LPIs are supported.
func (t GicrTyper) PhysicalLPIsSupported() bool {
	return uint64(t)&(1<<0) != 0
}

// DistributorLayout describes the GICv3 distributor frame byte-exactly:
// offsets, widths and access modes, with the gaps reserved.
func DistributorLayout() *mmio.Layout {
	return mmio.NewLayout("GICv3 distributor", DistributorSize, []mmio.Field{
		{Name: "GICD_CTLR", Offset: GICD_CTLR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICD_TYPER", Offset: GICD_TYPER, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICD_IIDR", Offset: GICD_IIDR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICD_TYPER2", Offset: GICD_TYPER2, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICD_STATUSR", Offset: GICD_STATUSR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICD_SETSPI_NSR", Offset: GICD_SETSPI_NSR, Width: 4, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICD_CLRSPI_NSR", Offset: GICD_CLRSPI_NSR, Width: 4, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICD_SETSPI_SR", Offset: GICD_SETSPI_SR, Width: 4, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICD_CLRSPI_SR", Offset: GICD_CLRSPI_SR, Width: 4, Count: 1, Access: mmio.WriteOnly},
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
		{Name: "GICD_IGRPMODR", Offset: GICD_IGRPMODR, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_NSACR", Offset: GICD_NSACR, Width: 4, Count: 64, Access: mmio.ReadWrite},
		{Name: "GICD_SGIR", Offset: GICD_SGIR, Width: 4, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICD_CPENDSGIR", Offset: GICD_CPENDSGIR, Width: 4, Count: 4, Access: mmio.ReadWrite},
		{Name: "GICD_SPENDSGIR", Offset: GICD_SPENDSGIR, Width: 4, Count: 4, Access: mmio.ReadWrite},
		{Name: "GICD_INMIR", Offset: GICD_INMIR, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_IGROUPR_E", Offset: GICD_IGROUPR_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ISENABLER_E", Offset: GICD_ISENABLER_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ICENABLER_E", Offset: GICD_ICENABLER_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ISPENDR_E", Offset: GICD_ISPENDR_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ICPENDR_E", Offset: GICD_ICPENDR_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ISACTIVER_E", Offset: GICD_ISACTIVER_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_ICACTIVER_E", Offset: GICD_ICACTIVER_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_IPRIORITYR_E", Offset: GICD_IPRIORITYR_E, Width: 4, Count: 256, Access: mmio.ReadWrite},
		{Name: "GICD_ICFGR_E", Offset: GICD_ICFGR_E, Width: 4, Count: 64, Access: mmio.ReadWrite},
		{Name: "GICD_IGRPMODR_E", Offset: GICD_IGRPMODR_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_NSACR_E", Offset: GICD_NSACR_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_INMIR_E", Offset: GICD_INMIR_E, Width: 4, Count: 32, Access: mmio.ReadWrite},
		{Name: "GICD_IROUTER", Offset: GICD_IROUTER, Width: 8, Count: 988, Access: mmio.ReadWrite},
		{Name: "GICD_IROUTER_E", Offset: GICD_IROUTER_E, Width: 8, Count: 1024, Access: mmio.ReadWrite},
		{Name: "GICD_IDREGS", Offset: GICD_IDREGS, Width: 4, Count: 12, Access: mmio.ReadOnly},
	})
}

// RedistributorLayout describes one RD_base page byte-exactly.
func RedistributorLayout() *mmio.Layout {
	return mmio.NewLayout("GICv3 redistributor", FrameSize, []mmio.Field{
		{Name: "GICR_CTLR", Offset: GICR_CTLR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_IIDR", Offset: GICR_IIDR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICR_TYPER", Offset: GICR_TYPER, Width: 8, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICR_STATUSR", Offset: GICR_STATUSR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_WAKER", Offset: GICR_WAKER, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_MPAMIDR", Offset: GICR_MPAMIDR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICR_PARTIDR", Offset: GICR_PARTIDR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_PWRR", Offset: GICR_PWRR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_SETLPIR", Offset: GICR_SETLPIR, Width: 8, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICR_CLRLPIR", Offset: GICR_CLRLPIR, Width: 8, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICR_PROPBASER", Offset: GICR_PROPBASER, Width: 8, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_PENDBASER", Offset: GICR_PENDBASER, Width: 8, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_INVLPIR", Offset: GICR_INVLPIR, Width: 8, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICR_INVALLR", Offset: GICR_INVALLR, Width: 8, Count: 1, Access: mmio.WriteOnly},
		{Name: "GICR_SYNCR", Offset: GICR_SYNCR, Width: 4, Count: 1, Access: mmio.ReadOnly},
		{Name: "GICR_IDREGS", Offset: GICR_IDREGS, Width: 4, Count: 12, Access: mmio.ReadOnly},
	})
}

// SGILayout describes one SGI_base page byte-exactly.
func SGILayout() *mmio.Layout {
	return mmio.NewLayout("GICv3 SGI frame", FrameSize, []mmio.Field{
		{Name: "GICR_IGROUPR0", Offset: GICR_IGROUPR0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_IGROUPR_E", Offset: GICR_IGROUPR_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_ISENABLER0", Offset: GICR_ISENABLER0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_ISENABLER_E", Offset: GICR_ISENABLER_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_ICENABLER0", Offset: GICR_ICENABLER0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_ICENABLER_E", Offset: GICR_ICENABLER_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_ISPENDR0", Offset: GICR_ISPENDR0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_ISPENDR_E", Offset: GICR_ISPENDR_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_ICPENDR0", Offset: GICR_ICPENDR0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_ICPENDR_E", Offset: GICR_ICPENDR_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_ISACTIVER0", Offset: GICR_ISACTIVER0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_ISACTIVER_E", Offset: GICR_ISACTIVER_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_ICACTIVER0", Offset: GICR_ICACTIVER0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_ICACTIVER_E", Offset: GICR_ICACTIVER_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_IPRIORITYR", Offset: GICR_IPRIORITYR, Width: 4, Count: 8, Access: mmio.ReadWrite},
		{Name: "GICR_IPRIORITYR_E", Offset: GICR_IPRIORITYR_E, Width: 4, Count: 16, Access: mmio.ReadWrite},
		{Name: "GICR_ICFGR", Offset: GICR_ICFGR, Width: 4, Count: 6, Access: mmio.ReadWrite},
		{Name: "GICR_IGRPMODR0", Offset: GICR_IGRPMODR0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_IGRPMODR_E", Offset: GICR_IGRPMODR_E, Width: 4, Count: 2, Access: mmio.ReadWrite},
		{Name: "GICR_NSACR", Offset: GICR_NSACR, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_INMIR0", Offset: GICR_INMIR0, Width: 4, Count: 1, Access: mmio.ReadWrite},
		{Name: "GICR_INMIR_E", Offset: GICR_INMIR_E, Width: 4, Count: 31, Access: mmio.ReadWrite},
	})
}
