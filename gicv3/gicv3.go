// Package gicv3 implements a driver for the Arm Generic Interrupt
// Controller version 3 or 4.
//
// The driver owns the distributor frame and the array of per-core
// redistributor frames of one controller for its whole lifetime. The CPU
// interface lives in system registers rather than memory-mapped ones, so
// the driver also carries a sysreg.Registers backend.
//
// Every operation completes in a fixed, small number of register accesses
// except the wake/sleep handshakes and the distributor control barrier,
// which spin unboundedly: a non-responsive controller hangs the caller,
// and bounded-latency callers must supply an external watchdog. The
// driver holds no locks. Calls against different cores' private state are
// safe to run concurrently; calls against the same core's frame or the
// shared distributor require external serialization.
package gicv3

import (
	"errors"
	"fmt"
	"runtime"

	gic "github.com/google/arm-gic"
	"github.com/google/arm-gic/mmio"
	"github.com/google/arm-gic/sysreg"
)

// GicV3 is a driver instance for one GICv3 or GICv4 controller.
type GicV3 struct {
	gicd   mmio.Device
	gicr   mmio.Device
	regs   sysreg.Registers
	cores  int
	stride uint64
	spin   func()
}

// Option configures a GicV3 at construction time.
type Option func(*GicV3)

// WithStride overrides the probed distance in bytes between redistributor
// frames. Boards that lay frames out non-contiguously or with extra
// implementation defined pages need this.
func WithStride(stride uint64) Option {
	return func(g *GicV3) { g.stride = stride }
}

// WithSpin replaces the spin step used while waiting on the wake/sleep
// handshake and the distributor write-pending flag. The default yields
// the processor between polls.
func WithSpin(spin func()) Option {
	return func(g *GicV3) { g.spin = spin }
}

// New constructs the driver from the distributor frame, the base of the
// redistributor frame array, the system register backend and the number
// of cores. The devices must cover exactly those register blocks, mapped
// as device memory with no other live aliases. Creation is the sole trust
// boundary; there is no teardown protocol.
//
// Unless WithStride overrides it, the frame stride is probed once from
// the first redistributor's type register: virtual LPI support doubles
// the per-core window.
func New(gicd, gicr mmio.Device, regs sysreg.Registers, cores int, opts ...Option) (*GicV3, error) {
	if cores <= 0 {
		return nil, fmt.Errorf("core count %d: %w", cores, gic.ErrOutOfRange)
	}
	g := &GicV3{
		gicd:  gicd,
		gicr:  gicr,
		regs:  regs,
		cores: cores,
		spin:  runtime.Gosched,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.stride == 0 {
		if GicrTyper(gicr.Read64(GICR_TYPER)).VirtualLPIsSupported() {
			g.stride = StrideVirtual
		} else {
			g.stride = StridePhysical
		}
	}
	return g, nil
}

func (g *GicV3) checkCPU(cpu int) error {
	if cpu < 0 || cpu >= g.cores {
		return fmt.Errorf("core %d of %d: %w", cpu, g.cores, gic.ErrOutOfRange)
	}
	return nil
}

func checkRange(intid gic.IntID) error {
	if !intid.IsSGI() && !intid.IsPPI() && !intid.IsSPI() {
		return fmt.Errorf("%v: %w", intid, gic.ErrOutOfRange)
	}
	return nil
}

// rd returns the RD_base page of the given core's redistributor frame.
func (g *GicV3) rd(cpu int) mmio.Device {
	return mmio.Offset(g.gicr, uint64(cpu)*g.stride, FrameSize)
}

// sgi returns the SGI_base page of the given core's redistributor frame.
func (g *GicV3) sgi(cpu int) mmio.Device {
	return mmio.Offset(g.gicr, uint64(cpu)*g.stride+SGIOffset, FrameSize)
}

// MarkCoreAwake tells the redistributor that the given core is awake and
// waits for the controller to acknowledge, spinning with no timeout. It
// returns ErrAlreadyAwake, without touching hardware state, if the
// redistributor already reports the core awake.
func (g *GicV3) MarkCoreAwake(cpu int) error {
	if err := g.checkCPU(cpu); err != nil {
		return err
	}
	rd := g.rd(cpu)

	waker := Waker(rd.Read32(GICR_WAKER))
	if waker&WakerChildrenAsleep == 0 {
		return fmt.Errorf("core %d: %w", cpu, ErrAlreadyAwake)
	}
	rd.Write32(GICR_WAKER, uint32(waker&^WakerProcessorSleep))
	for Waker(rd.Read32(GICR_WAKER))&WakerChildrenAsleep != 0 {
		g.spin()
	}
	return nil
}

// MarkCoreAsleep tells the redistributor that the given core is going to
// sleep and waits for the controller to acknowledge, spinning with no
// timeout. It returns ErrAlreadyAsleep, without touching hardware state,
// if the redistributor already reports the core asleep.
func (g *GicV3) MarkCoreAsleep(cpu int) error {
	if err := g.checkCPU(cpu); err != nil {
		return err
	}
	rd := g.rd(cpu)

	waker := Waker(rd.Read32(GICR_WAKER))
	if waker&WakerChildrenAsleep != 0 {
		return fmt.Errorf("core %d: %w", cpu, ErrAlreadyAsleep)
	}
	rd.Write32(GICR_WAKER, uint32(waker|WakerProcessorSleep))
	for Waker(rd.Read32(GICR_WAKER))&WakerChildrenAsleep == 0 {
		g.spin()
	}
	return nil
}

// InitCPU initialises the CPU interface of the calling core: system
// register access is enabled, the core is marked awake (a core that is
// already awake is fine), distribution hinting from the priority mask is
// disabled, EOI writes also deactivate, and group 0 and group 1 use
// separate preemption settings.
func (g *GicV3) InitCPU(cpu int) error {
	if err := g.checkCPU(cpu); err != nil {
		return err
	}
	g.regs.Write(sysreg.ICC_SRE_EL1, 0x01)
	if err := g.MarkCoreAwake(cpu); err != nil && !errors.Is(err, ErrAlreadyAwake) {
		return err
	}
	g.regs.Write(sysreg.ICC_CTLR_EL1, 0)
	return nil
}

// Setup initialises the controller from the calling core: the CPU
// interface is brought up via InitCPU, affinity routing and non-secure
// group 1 are enabled at the distributor, every private interrupt of
// every known core and every shared interrupt is placed in non-secure
// group 1, and group 1 delivery is enabled for the calling core.
//
// The distributor effects are global. Calling Setup for the same
// controller from two cores concurrently requires external serialization.
func (g *GicV3) Setup(cpu int) error {
	if err := g.InitCPU(cpu); err != nil {
		return err
	}

	g.GicdSetControl(GicdCtlrARE_S | GicdCtlrEnableGrp1NS)

	for c := 0; c < g.cores; c++ {
		g.sgi(c).Write32(GICR_IGROUPR0, 0xffffffff)
	}
	for i := uint64(0); i < 32; i++ {
		g.gicd.Write32(GICD_IGROUPR+4*i, 0xffffffff)
	}

	g.regs.Write(sysreg.ICC_IGRPEN1_EL1, 0x00000001)
	return nil
}

// EnableInterrupt enables or disables the interrupt with the given ID.
// Private interrupts are configured on the given core's redistributor;
// shared ones on the distributor, in which case cpu is ignored.
//
// Enabling verifies that the bit latched by reading the register back; a
// line the hardware does not implement returns gic.ErrNotLatched instead
// of succeeding silently. Disabling is unconditional.
func (g *GicV3) EnableInterrupt(intid gic.IntID, cpu int, enable bool) error {
	if err := checkRange(intid); err != nil {
		return err
	}
	bit := uint32(1) << (uint32(intid) % 32)

	var dev mmio.Device
	var set, clear uint64
	if intid.IsPrivate() {
		if err := g.checkCPU(cpu); err != nil {
			return err
		}
		dev = g.sgi(cpu)
		set, clear = GICR_ISENABLER0, GICR_ICENABLER0
	} else {
		dev = g.gicd
		index := uint64(intid) / 32
		set, clear = GICD_ISENABLER+4*index, GICD_ICENABLER+4*index
	}

	if enable {
		dev.Write32(set, bit)
		if dev.Read32(set)&bit == 0 {
			return fmt.Errorf("%v: %w", intid, gic.ErrNotLatched)
		}
		return nil
	}
	dev.Write32(clear, bit)
	return nil
}

// EnableAllInterrupts enables or disables every shared interrupt and
// every core's private interrupts.
func (g *GicV3) EnableAllInterrupts(enable bool) {
	for i := uint64(0); i < 32; i++ {
		if enable {
			g.gicd.Write32(GICD_ISENABLER+4*i, 0xffffffff)
		} else {
			g.gicd.Write32(GICD_ICENABLER+4*i, 0xffffffff)
		}
	}
	for c := 0; c < g.cores; c++ {
		if enable {
			g.sgi(c).Write32(GICR_ISENABLER0, 0xffffffff)
		} else {
			g.sgi(c).Write32(GICR_ICENABLER0, 0xffffffff)
		}
	}
}

// SetPriorityMask sets the priority mask for the current CPU core. Only
// interrupts with a higher priority (numerically lower) than the mask are
// signalled.
func (g *GicV3) SetPriorityMask(minPriority uint8) {
	g.regs.Write(sysreg.ICC_PMR_EL1, uint64(minPriority))
}

// SetInterruptPriority sets the priority of the interrupt with the given
// ID. Lower numbers are higher priorities: 0 is the highest, 255 the
// lowest. The other three interrupts packed into the same register are
// left untouched. Private interrupts take the priority on the given
// core's redistributor; shared ones on the distributor, in which case cpu
// is ignored.
func (g *GicV3) SetInterruptPriority(intid gic.IntID, cpu int, priority uint8) error {
	if err := checkRange(intid); err != nil {
		return err
	}

	var dev mmio.Device
	var base uint64
	if intid.IsPrivate() {
		if err := g.checkCPU(cpu); err != nil {
			return err
		}
		dev, base = g.sgi(cpu), GICR_IPRIORITYR
	} else {
		dev, base = g.gicd, GICD_IPRIORITYR
	}

	reg := base + 4*(uint64(intid)/4)
	shift := 8 * (uint32(intid) % 4)
	v := dev.Read32(reg)
	v = v&^(0xff<<shift) | uint32(priority)<<shift
	dev.Write32(reg, v)
	return nil
}

// SetTrigger configures the trigger type for the interrupt with the given
// ID. Only the interrupt's own configuration bit is rewritten; the paired
// even bit and the other interrupts in the register are preserved.
// Private interrupts are configured on the given core's redistributor;
// shared ones on the distributor, in which case cpu is ignored.
func (g *GicV3) SetTrigger(intid gic.IntID, cpu int, trigger gic.Trigger) error {
	if err := checkRange(intid); err != nil {
		return err
	}

	var dev mmio.Device
	var base uint64
	if intid.IsPrivate() {
		if err := g.checkCPU(cpu); err != nil {
			return err
		}
		dev, base = g.sgi(cpu), GICR_ICFGR
	} else {
		dev, base = g.gicd, GICD_ICFGR
	}

	reg := base + 4*(uint64(intid)/16)
	bit := uint32(1) << ((uint32(intid)%16)*2 + 1)

	v := dev.Read32(reg)
	switch trigger {
	case gic.Edge:
		v |= bit
	case gic.Level:
		v &^= bit
	default:
		return fmt.Errorf("trigger %v: %w", trigger, gic.ErrOutOfRange)
	}
	dev.Write32(reg, v)
	return nil
}

// Group is the security and delivery classification of an interrupt.
type Group int

const (
	// SecureGroup0 interrupts are delivered as FIQ to the secure state.
	SecureGroup0 Group = iota
	// SecureGroup1 interrupts are delivered as IRQ to the secure state.
	SecureGroup1
	// NonSecureGroup1 interrupts are delivered as IRQ to the non-secure
	// state.
	NonSecureGroup1
)

// SetGroup assigns the interrupt with the given ID to a group. The group
// bit and the modifier bit of the interrupt are rewritten; all other
// interrupts in the two registers are preserved. Private interrupts are
// configured on the given core's redistributor; shared ones on the
// distributor, in which case cpu is ignored.
func (g *GicV3) SetGroup(intid gic.IntID, cpu int, group Group) error {
	if err := checkRange(intid); err != nil {
		return err
	}

	var dev mmio.Device
	var groupReg, modReg uint64
	if intid.IsPrivate() {
		if err := g.checkCPU(cpu); err != nil {
			return err
		}
		dev = g.sgi(cpu)
		groupReg, modReg = GICR_IGROUPR0, GICR_IGRPMODR0
	} else {
		dev = g.gicd
		index := uint64(intid) / 32
		groupReg, modReg = GICD_IGROUPR+4*index, GICD_IGRPMODR+4*index
	}
	bit := uint32(1) << (uint32(intid) % 32)

	var groupSet, modSet bool
	switch group {
	case SecureGroup0:
	case SecureGroup1:
		modSet = true
	case NonSecureGroup1:
		groupSet = true
	default:
		return fmt.Errorf("group %d: %w", group, gic.ErrOutOfRange)
	}

	v := dev.Read32(groupReg)
	if groupSet {
		v |= bit
	} else {
		v &^= bit
	}
	dev.Write32(groupReg, v)

	v = dev.Read32(modReg)
	if modSet {
		v |= bit
	} else {
		v &^= bit
	}
	dev.Write32(modReg, v)
	return nil
}

// SendSGI sends a software-generated interrupt to the given cores.
func (g *GicV3) SendSGI(intid gic.IntID, target SgiTarget) error {
	if !intid.IsSGI() {
		return fmt.Errorf("%v is not an SGI: %w", intid, gic.ErrOutOfRange)
	}

	var value uint64
	if target.broadcast {
		value = uint64(uint32(intid)&0xf)<<24 | 1<<40
	} else {
		value = uint64(target.list) |
			uint64(target.affinity1)<<16 |
			uint64(uint32(intid)&0xf)<<24 |
			uint64(target.affinity2)<<32 |
			uint64(target.affinity3)<<48
	}
	g.regs.Write(sysreg.ICC_SGI1R_EL1, value)
	return nil
}

// GetAndAcknowledgeInterrupt returns the ID of the highest priority
// signalled group 1 interrupt for the calling core and acknowledges it,
// raising the running priority and marking the interrupt active. It
// returns false if there is no pending interrupt of sufficient priority.
//
// It must be called with the core's interrupts masked, and every
// acknowledged interrupt must be paired with exactly one EndInterrupt
// call on the same core.
func (g *GicV3) GetAndAcknowledgeInterrupt() (gic.IntID, bool) {
	intid := gic.IntID(g.regs.Read(sysreg.ICC_IAR1_EL1) & 0xffffff)
	if intid == gic.SpecialNone {
		return 0, false
	}
	return intid, true
}

// EndInterrupt informs the controller that the CPU has completed
// processing the given interrupt, dropping its priority and deactivating
// it. Calling it with an ID that was not acknowledged on this core is a
// contract violation the hardware does not detect.
func (g *GicV3) EndInterrupt(intid gic.IntID) {
	g.regs.Write(sysreg.ICC_EOIR1_EL1, uint64(intid))
}

// GicdSetControl sets the given flags in the distributor control register
// and waits for the write-pending flag to clear. Toggling affinity
// routing is not instantaneous; the barrier spins with no timeout.
func (g *GicV3) GicdSetControl(flags GicdCtlr) {
	v := GicdCtlr(g.gicd.Read32(GICD_CTLR))
	g.gicd.Write32(GICD_CTLR, uint32(v|flags))
	g.gicdBarrier()
}

// GicdClearControl clears the given flags in the distributor control
// register and waits for the write-pending flag to clear.
func (g *GicV3) GicdClearControl(flags GicdCtlr) {
	v := GicdCtlr(g.gicd.Read32(GICD_CTLR))
	g.gicd.Write32(GICD_CTLR, uint32(v&^flags))
	g.gicdBarrier()
}

func (g *GicV3) gicdBarrier() {
	for GicdCtlr(g.gicd.Read32(GICD_CTLR))&GicdCtlrRWP != 0 {
		g.spin()
	}
}

// Typer returns the interrupt controller type register value. This is a
// pure informational read and may be issued from any core.
func (g *GicV3) Typer() Typer {
	return Typer(g.gicd.Read32(GICD_TYPER))
}

// RedistributorTyper returns the type register value of the given core's
// redistributor.
func (g *GicV3) RedistributorTyper(cpu int) (GicrTyper, error) {
	if err := g.checkCPU(cpu); err != nil {
		return 0, err
	}
	return GicrTyper(g.rd(cpu).Read64(GICR_TYPER)), nil
}

// RedistributorIIDR returns the implementer identification register value
// of the given core's redistributor.
func (g *GicV3) RedistributorIIDR(cpu int) (GicrIidr, error) {
	if err := g.checkCPU(cpu); err != nil {
		return 0, err
	}
	return GicrIidr(g.rd(cpu).Read32(GICR_IIDR)), nil
}

// CoreCount returns the number of redistributor frames the driver was
// constructed with.
func (g *GicV3) CoreCount() int {
	return g.cores
}

// Stride returns the distance in bytes between redistributor frames.
func (g *GicV3) Stride() uint64 {
	return g.stride
}

// GicdPtr returns the raw distributor frame. Using it bypasses every
// guarantee the driver makes; the caller takes over the ownership
// discipline.
func (g *GicV3) GicdPtr() mmio.Device {
	return g.gicd
}

// GicrPtr returns the raw RD_base page of the given core's redistributor
// frame, with the same caveats as GicdPtr.
func (g *GicV3) GicrPtr(cpu int) (mmio.Device, error) {
	if err := g.checkCPU(cpu); err != nil {
		return nil, err
	}
	return g.rd(cpu), nil
}

// SgiPtr returns the raw SGI_base page of the given core's redistributor
// frame, with the same caveats as GicdPtr.
func (g *GicV3) SgiPtr(cpu int) (mmio.Device, error) {
	if err := g.checkCPU(cpu); err != nil {
		return nil, err
	}
	return g.sgi(cpu), nil
}

// SgiTarget is the target specification for a software-generated
// interrupt.
type SgiTarget struct {
	broadcast bool
	affinity3 uint8
	affinity2 uint8
	affinity1 uint8
	list      uint16
}

// SgiTargetAll routes the SGI to all CPU cores except the sender.
func SgiTargetAll() SgiTarget {
	return SgiTarget{broadcast: true}
}

// SgiTargetList routes the SGI to the cores matching affinity levels 1 to
// 3 whose affinity level 0 values are named in the 16-bit target list.
func SgiTargetList(affinity3, affinity2, affinity1 uint8, list uint16) SgiTarget {
	return SgiTarget{
		affinity3: affinity3,
		affinity2: affinity2,
		affinity1: affinity1,
		list:      list,
	}
}
