//go:build arm64

package sysreg

import "fmt"

// Native returns the Registers implementation backed by MRS and MSR
// instructions on the calling core. The value is stateless; what it reads
// and writes is the current core's registers.
func Native() Registers {
	return native{}
}

type native struct{}

func (native) Read(r Register) uint64 {
	switch r {
	case ICC_IAR1_EL1:
		return readICCIAR1()
	case ICC_SRE_EL1:
		return readICCSRE()
	default:
		panic(fmt.Sprintf("sysreg: %s is not readable through this interface", r))
	}
}

func (native) Write(r Register, value uint64) {
	switch r {
	case ICC_SRE_EL1:
		writeICCSRE(value)
	case ICC_PMR_EL1:
		writeICCPMR(value)
	case ICC_CTLR_EL1:
		writeICCCTLR(value)
	case ICC_IGRPEN0_EL1:
		writeICCIGRPEN0(value)
	case ICC_IGRPEN1_EL1:
		writeICCIGRPEN1(value)
	case ICC_EOIR1_EL1:
		writeICCEOIR1(value)
	case ICC_SGI1R_EL1:
		writeICCSGI1R(value)
	default:
		panic(fmt.Sprintf("sysreg: %s is not writable through this interface", r))
	}
}

// Implemented in sysreg_arm64.s.
func readICCIAR1() uint64
func readICCSRE() uint64
func writeICCSRE(value uint64)
func writeICCPMR(value uint64)
func writeICCCTLR(value uint64)
func writeICCIGRPEN0(value uint64)
func writeICCIGRPEN1(value uint64)
func writeICCEOIR1(value uint64)
func writeICCSGI1R(value uint64)

// IRQEnable enables debug, SError, IRQ and FIQ exceptions on the calling
// core.
func IRQEnable()

// IRQDisable disables debug, SError, IRQ and FIQ exceptions on the
// calling core.
func IRQDisable()

// WFI waits for an interrupt.
func WFI()
