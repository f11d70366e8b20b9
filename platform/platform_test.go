package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseGICv3(t *testing.T) {
	board, err := Parse([]byte(`
name: test-board
gicv3:
  distributor_base: "0x2f000000"
  redistributor_base: "0x2f100000"
  cores: 8
  stride: "0x20000"
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if board.Name != "test-board" {
		t.Errorf("name = %q", board.Name)
	}
	if board.GICv2 != nil {
		t.Errorf("parsed a gicv2 section that is not there")
	}
	g := board.GICv3
	if g == nil {
		t.Fatal("no gicv3 section")
	}
	if g.DistributorBase != 0x2f000000 || g.RedistributorBase != 0x2f100000 {
		t.Errorf("bases = %#x, %#x", uint64(g.DistributorBase), uint64(g.RedistributorBase))
	}
	if g.Cores != 8 || g.Stride != 0x20000 {
		t.Errorf("cores = %d, stride = %#x", g.Cores, uint64(g.Stride))
	}
}

func TestParseDecimalAddresses(t *testing.T) {
	board, err := Parse([]byte(`
name: decimal
gicv2:
  distributor_base: 134217728
  cpu_interface_base: 134283264
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if board.GICv2.DistributorBase != 0x08000000 {
		t.Errorf("distributor base = %#x, want 0x08000000", uint64(board.GICv2.DistributorBase))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		wants string
	}{
		{
			"no controller",
			"name: empty\n",
			"no interrupt controller",
		},
		{
			"both controllers",
			`name: both
gicv2: {distributor_base: "0x1000", cpu_interface_base: "0x2000"}
gicv3: {distributor_base: "0x1000", redistributor_base: "0x2000", cores: 1}
`,
			"both gicv2 and gicv3",
		},
		{
			"missing base",
			`name: nobase
gicv2: {distributor_base: "0x1000"}
`,
			"frame base missing",
		},
		{
			"no cores",
			`name: nocores
gicv3: {distributor_base: "0x1000", redistributor_base: "0x2000"}
`,
			"core count",
		},
		{
			"unaligned stride",
			`name: badstride
gicv3: {distributor_base: "0x1000", redistributor_base: "0x2000", cores: 2, stride: "0x1234"}
`,
			"not 64KB aligned",
		},
		{
			"bad address",
			`name: badaddr
gicv2: {distributor_base: "0xnope", cpu_interface_base: "0x2000"}
`,
			"invalid address",
		},
		{
			"no name",
			`gicv2: {distributor_base: "0x1000", cpu_interface_base: "0x2000"}`,
			"no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wants) {
				t.Errorf("Parse = %v, want error containing %q", err, tt.wants)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := []byte(`
name: filed
gicv2:
  distributor_base: "0x08000000"
  cpu_interface_base: "0x08010000"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	board, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if board.Name != "filed" {
		t.Errorf("name = %q", board.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
}

func TestPresets(t *testing.T) {
	v2 := QEMUVirtV2()
	if err := v2.Validate(); err != nil {
		t.Errorf("QEMUVirtV2 does not validate: %v", err)
	}
	if v2.GICv2.DistributorBase != 0x08000000 || v2.GICv2.CPUInterfaceBase != 0x08010000 {
		t.Errorf("QEMUVirtV2 bases = %#x, %#x",
			uint64(v2.GICv2.DistributorBase), uint64(v2.GICv2.CPUInterfaceBase))
	}

	v3 := QEMUVirtV3(4)
	if err := v3.Validate(); err != nil {
		t.Errorf("QEMUVirtV3 does not validate: %v", err)
	}
	if v3.GICv3.RedistributorBase != 0x080A0000 || v3.GICv3.Cores != 4 {
		t.Errorf("QEMUVirtV3 = %+v", v3.GICv3)
	}
}

func TestHexRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(QEMUVirtV3(2))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "0x8000000") {
		t.Errorf("marshaled board does not render addresses in hex:\n%s", data)
	}

	board, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshaled board failed: %v", err)
	}
	if board.GICv3.DistributorBase != 0x08000000 || board.GICv3.Stride != 0x20000 {
		t.Errorf("round trip = %+v", board.GICv3)
	}
}
