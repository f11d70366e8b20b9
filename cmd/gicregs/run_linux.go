//go:build linux

package main

import (
	"fmt"

	"github.com/google/arm-gic/gicv2"
	"github.com/google/arm-gic/gicv3"
	"github.com/google/arm-gic/mmio"
	"github.com/google/arm-gic/platform"
)

func run(board *platform.Board, devmem string) error {
	fmt.Printf("board: %s\n", board.Name)
	if board.GICv2 != nil {
		return dumpV2(board.GICv2, devmem)
	}
	return dumpV3(board.GICv3, devmem)
}

func dumpV2(b *platform.GICv2, devmem string) error {
	gicd, err := mmio.OpenDevMem(devmem, uintptr(b.DistributorBase), gicv2.DistributorSize)
	if err != nil {
		return fmt.Errorf("mapping distributor: %w", err)
	}
	defer gicd.Close()

	typer := gicv2.Typer(gicd.Read32(gicv2.GICD_TYPER))
	fmt.Printf("GICD_CTLR:  %#08x\n", gicd.Read32(gicv2.GICD_CTLR))
	fmt.Printf("GICD_TYPER: %#08x\n", uint32(typer))
	fmt.Printf("  interrupt lines:    %d\n", typer.NumIRQs())
	fmt.Printf("  cpu interfaces:     %d\n", typer.CPUCount())
	fmt.Printf("  security extension: %v\n", typer.HasSecurityExtension())
	if typer.HasSecurityExtension() {
		fmt.Printf("  lockable SPIs:      %d\n", typer.LockableSPICount())
	}
	fmt.Printf("GICD_IIDR:  %#08x\n", gicd.Read32(gicv2.GICD_IIDR))
	return nil
}

func dumpV3(b *platform.GICv3, devmem string) error {
	gicd, err := mmio.OpenDevMem(devmem, uintptr(b.DistributorBase), gicv3.DistributorSize)
	if err != nil {
		return fmt.Errorf("mapping distributor: %w", err)
	}
	defer gicd.Close()

	typer := gicv3.Typer(gicd.Read32(gicv3.GICD_TYPER))
	fmt.Printf("GICD_CTLR:  %#08x\n", gicd.Read32(gicv3.GICD_CTLR))
	fmt.Printf("GICD_TYPER: %#08x\n", uint32(typer))
	fmt.Printf("  SPIs:               %d\n", typer.NumSPIs())
	fmt.Printf("  id bits:            %d\n", typer.IDBits())
	fmt.Printf("  security extension: %v\n", typer.HasSecurityExtension())
	fmt.Printf("  LPIs:               %v", typer.LPISSupported())
	if typer.LPISSupported() {
		fmt.Printf(" (%d)", typer.NumLPIs())
	}
	fmt.Println()
	fmt.Printf("  extended SPIs:      %v", typer.ESPISupported())
	if typer.ESPISupported() {
		fmt.Printf(" (up to %v)", typer.MaxESPI())
	}
	fmt.Println()
	fmt.Printf("GICD_IIDR:  %#08x\n", gicd.Read32(gicv3.GICD_IIDR))

	stride := uint64(b.Stride)
	if stride == 0 {
		frame0, err := mmio.OpenDevMem(devmem, uintptr(b.RedistributorBase), gicv3.FrameSize)
		if err != nil {
			return fmt.Errorf("mapping redistributor 0: %w", err)
		}
		if gicv3.GicrTyper(frame0.Read64(gicv3.GICR_TYPER)).VirtualLPIsSupported() {
			stride = gicv3.StrideVirtual
		} else {
			stride = gicv3.StridePhysical
		}
		frame0.Close()
	}

	for cpu := 0; cpu < b.Cores; cpu++ {
		base := uintptr(uint64(b.RedistributorBase) + uint64(cpu)*stride)
		rd, err := mmio.OpenDevMem(devmem, base, gicv3.FrameSize)
		if err != nil {
			return fmt.Errorf("mapping redistributor %d: %w", cpu, err)
		}
		rdTyper := gicv3.GicrTyper(rd.Read64(gicv3.GICR_TYPER))
		iidr := gicv3.GicrIidr(rd.Read32(gicv3.GICR_IIDR))
		waker := gicv3.Waker(rd.Read32(gicv3.GICR_WAKER))
		hasPwrr := false
		var pwrr gicv3.GicrPwrr
		switch iidr.ModelID() {
		case gicv3.ModelIDArmGIC600, gicv3.ModelIDArmGIC600AE, gicv3.ModelIDArmGIC700:
			hasPwrr = true
			pwrr = gicv3.GicrPwrr(rd.Read32(gicv3.GICR_PWRR))
		}
		rd.Close()

		fmt.Printf("redistributor %d @ %#x\n", cpu, base)
		fmt.Printf("  GICR_TYPER: %#016x\n", uint64(rdTyper))
		fmt.Printf("    core MPIDR:       %#x\n", rdTyper.CoreMPIDR())
		fmt.Printf("    processor number: %d\n", rdTyper.ProcessorNumber())
		fmt.Printf("    last:             %v\n", rdTyper.LastRedistributor())
		fmt.Printf("    physical LPIs:    %v\n", rdTyper.PhysicalLPIsSupported())
		fmt.Printf("    virtual LPIs:     %v\n", rdTyper.VirtualLPIsSupported())
		fmt.Printf("  GICR_IIDR:  %#08x (model %#08x)\n", uint32(iidr), iidr.ModelID())
		fmt.Printf("  GICR_WAKER: %#08x\n", uint32(waker))
		if waker&gicv3.WakerChildrenAsleep != 0 {
			fmt.Printf("    core is asleep\n")
		}
		if hasPwrr {
			fmt.Printf("  GICR_PWRR:  %#08x\n", uint32(pwrr))
			fmt.Printf("    power down permitted: %v\n", pwrr&gicv3.GicrPwrrRDPD != 0)
			fmt.Printf("    power state reached:  %v\n", pwrr.PowerStateReached())
		}
	}
	return nil
}
