package fake

import "github.com/google/arm-gic/sysreg"

// SystemRegisters is a sysreg.Registers backed by a plain map. Each test
// constructs its own instance and passes it to the driver under test.
type SystemRegisters struct {
	values   map[sysreg.Register]uint64
	readHook func(r sysreg.Register, stored uint64) uint64
	writes   []SystemRegisterWrite
}

// SystemRegisterWrite records one write, in order.
type SystemRegisterWrite struct {
	Register sysreg.Register
	Value    uint64
}

// NewSystemRegisters returns a zeroed register file.
func NewSystemRegisters() *SystemRegisters {
	return &SystemRegisters{values: make(map[sysreg.Register]uint64)}
}

// SetReadHook registers fn, consulted on every read with the stored
// value. Tests use it to model registers whose reads have side effects,
// such as the acknowledge register.
func (s *SystemRegisters) SetReadHook(fn func(r sysreg.Register, stored uint64) uint64) {
	s.readHook = fn
}

// Read implements sysreg.Registers.
func (s *SystemRegisters) Read(r sysreg.Register) uint64 {
	v := s.values[r]
	if s.readHook != nil {
		return s.readHook(r, v)
	}
	return v
}

// Write implements sysreg.Registers.
func (s *SystemRegisters) Write(r sysreg.Register, value uint64) {
	s.values[r] = value
	s.writes = append(s.writes, SystemRegisterWrite{Register: r, Value: value})
}

// Get returns the stored value without invoking the read hook.
func (s *SystemRegisters) Get(r sysreg.Register) uint64 {
	return s.values[r]
}

// Set stores a value without recording a write.
func (s *SystemRegisters) Set(r sysreg.Register, value uint64) {
	s.values[r] = value
}

// Writes returns every write in the order it happened.
func (s *SystemRegisters) Writes() []SystemRegisterWrite {
	return s.writes
}

var _ sysreg.Registers = (*SystemRegisters)(nil)
