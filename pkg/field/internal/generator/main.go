package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Generates one package per fixed small-modulus field, each implementing the
// field.Element interface with Montgomery arithmetic over uint32.

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "scalarff")

	specs := []fieldSpecs{
		{Name: "mersenne31", Modulus: 1<<31 - 1},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Name),
				Templates: []string{"element.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element_test.go", spec.Name),
				Templates: []string{"element.test.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}

	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	Name    string
	Modulus uint32
}

type fieldConfig struct {
	fieldSpecs
	NegModulusInvModR uint32
}

func (f fieldSpecs) config() (*fieldConfig, error) {
	const R = 1 << 32

	if f.Modulus >= R>>1 { // need an extra bit
		return nil, fmt.Errorf("modulus must be less than 2³¹")
	}

	if f.Modulus%2 == 0 {
		return nil, fmt.Errorf("modulus must be odd")
	}

	var x big.Int

	x.ModInverse(big.NewInt(int64(f.Modulus)), big.NewInt(R))

	return &fieldConfig{
		fieldSpecs:        f,
		NegModulusInvModR: uint32(R - x.Uint64()),
	}, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", append(contextAndArgs[1:], err)...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
