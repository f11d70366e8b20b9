// Package sysreg names the whole-core system registers the GICv3/4 CPU
// interface is programmed through, and defines the read/write capability
// the driver consumes.
//
// On aarch64 hardware, Native returns the implementation backed by MRS
// and MSR instructions. Tests substitute an explicitly constructed fake.
package sysreg

// Register identifies one of the CPU interface system registers.
type Register uint8

const (
	// ICC_SRE_EL1 is the system register enable register.
	ICC_SRE_EL1 Register = iota
	// ICC_PMR_EL1 is the interrupt priority mask register.
	ICC_PMR_EL1
	// ICC_CTLR_EL1 is the CPU interface control register.
	ICC_CTLR_EL1
	// ICC_IGRPEN0_EL1 is the group 0 enable register.
	ICC_IGRPEN0_EL1
	// ICC_IGRPEN1_EL1 is the group 1 enable register.
	ICC_IGRPEN1_EL1
	// ICC_IAR1_EL1 is the group 1 interrupt acknowledge register.
	ICC_IAR1_EL1
	// ICC_EOIR1_EL1 is the group 1 end of interrupt register.
	ICC_EOIR1_EL1
	// ICC_SGI1R_EL1 is the group 1 software generated interrupt register.
	ICC_SGI1R_EL1

	numRegisters
)

var registerNames = [numRegisters]string{
	ICC_SRE_EL1:     "ICC_SRE_EL1",
	ICC_PMR_EL1:     "ICC_PMR_EL1",
	ICC_CTLR_EL1:    "ICC_CTLR_EL1",
	ICC_IGRPEN0_EL1: "ICC_IGRPEN0_EL1",
	ICC_IGRPEN1_EL1: "ICC_IGRPEN1_EL1",
	ICC_IAR1_EL1:    "ICC_IAR1_EL1",
	ICC_EOIR1_EL1:   "ICC_EOIR1_EL1",
	ICC_SGI1R_EL1:   "ICC_SGI1R_EL1",
}

func (r Register) String() string {
	if r < numRegisters {
		return registerNames[r]
	}
	return "unknown register"
}

// Registers reads and writes whole-core system registers by value.
// Implementations must be atomic and must not access memory.
type Registers interface {
	Read(Register) uint64
	Write(Register, uint64)
}
