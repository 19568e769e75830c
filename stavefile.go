//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

var Default = Build

const (
	binaryPath    = "bin/japarse"
	smokeDocument = "testdata/sample.txt"
)

var Aliases = map[string]any{
	"b":  Build,
	"t":  Test.Default,
	"l":  Lint.Default,
	"c":  Check,
	"s":  Smoke,
	"fz": Bench.Fuzz,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// Build writes bin/japarse, stamped with the git version. It is a no-op
// while the binary is newer than every source file.
func Build() error {
	stale, err := target.Dir(binaryPath, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !stale {
		fmt.Println(binaryPath, "is current")
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", versionFlags(), "-o", binaryPath, "./cmd/japarse")
}

// Check formats, lints and tests, in that order.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean deletes bin/ and the coverage profile.
func Clean() error {
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install puts japarse on the go install path.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", versionFlags(), "./cmd/japarse")
}

// Default runs the suite under the race detector via gotestsum.
func (Test) Default() error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", procs,
		"-parallel", procs,
		"-coverprofile=coverage.out",
		"./...",
	)
}

// Default runs golangci-lint and applies its fixes.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt rewrites every Go file with gofmt.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// Gate is what CI runs: nothing here writes to the tree except the build.
func (CI) Gate() error {
	st.SerialDeps(CI.Fmt, CI.Lint, Build, Test.Default, Smoke, CI.Tidy)
	fmt.Println("gate passed")
	return nil
}

// Fmt fails when gofmt would change a file.
func (CI) Fmt() error {
	unformatted, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if unformatted != "" {
		return fmt.Errorf("gofmt wants to rewrite:\n%s", unformatted)
	}
	return nil
}

// Lint runs golangci-lint without fixes.
func (CI) Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Tidy fails when go mod tidy would change go.mod or go.sum.
func (CI) Tidy() error {
	before, err := moduleFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := moduleFiles()
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("go.mod or go.sum is not tidy")
	}
	return nil
}

// Default runs the parser benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./pkg/japanese")
}

// Fuzz fuzzes the parser for JAPARSE_FUZZTIME (30s by default).
func (Bench) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("JAPARSE_FUZZTIME"), "30s")
	return sh.RunV("go", "test", "-run=^$", "-fuzz=^FuzzParse$", "-fuzztime", fuzzTime, "./pkg/japanese")
}

// Smoke parses testdata/sample.txt with the built binary in every output
// format.
func Smoke() error {
	st.Deps(Build)
	for _, format := range []string{"json", "yaml", "inspect", "text", "summary"} {
		if err := sh.RunV(binaryPath, "parse", "--format", format, smokeDocument); err != nil {
			return fmt.Errorf("smoke %s: %w", format, err)
		}
	}
	return nil
}

func moduleFiles() ([]byte, error) {
	var contents []byte
	for _, name := range []string{"go.mod", "go.sum"} {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		contents = append(contents, data...)
	}
	return contents, nil
}

func versionFlags() string {
	version := cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(git("rev-parse", "--short", "HEAD"), "none")
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, time.Now().UTC().Format(time.RFC3339))
}

func git(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
