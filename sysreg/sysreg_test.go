package sysreg

import "testing"

func TestRegisterString(t *testing.T) {
	tests := []struct {
		r    Register
		want string
	}{
		{ICC_SRE_EL1, "ICC_SRE_EL1"},
		{ICC_PMR_EL1, "ICC_PMR_EL1"},
		{ICC_IAR1_EL1, "ICC_IAR1_EL1"},
		{ICC_SGI1R_EL1, "ICC_SGI1R_EL1"},
		{numRegisters, "unknown register"},
		{Register(0xff), "unknown register"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Register(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
