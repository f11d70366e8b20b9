// Command gicregs maps a board's interrupt controller frames and prints
// the decoded identification and type registers. It only issues reads.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/arm-gic/platform"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	boardPath := fs.String("board", "", "Board description YAML file")
	preset := fs.String("preset", "", "Built-in board: qemu-virt-gicv2 or qemu-virt-gicv3")
	cores := fs.Int("cores", 1, "Core count for the qemu-virt-gicv3 preset")
	devmem := fs.String("devmem", "/dev/mem", "Physical memory device to map frames from")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	board, err := selectBoard(*boardPath, *preset, *cores)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gicregs: %v\n", err)
		fs.Usage()
		os.Exit(1)
	}

	if err := run(board, *devmem); err != nil {
		fmt.Fprintf(os.Stderr, "gicregs: %v\n", err)
		os.Exit(1)
	}
}

func selectBoard(boardPath, preset string, cores int) (*platform.Board, error) {
	switch {
	case boardPath != "" && preset != "":
		return nil, fmt.Errorf("-board and -preset are mutually exclusive")
	case boardPath != "":
		return platform.Load(boardPath)
	case preset == "qemu-virt-gicv2":
		return platform.QEMUVirtV2(), nil
	case preset == "qemu-virt-gicv3":
		return platform.QEMUVirtV3(cores), nil
	case preset != "":
		return nil, fmt.Errorf("unknown preset %q", preset)
	default:
		return nil, fmt.Errorf("a -board file or -preset is required")
	}
}
