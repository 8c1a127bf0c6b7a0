//go:build mage

// Package main contains Mage build targets for seekspot developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "seekspot"
	cmdPkg  = "./cmd/seekspot"
)

// projectDirs lists the local state directories the CLI expects.
var projectDirs = []string{
	".secrets",
	".seekspot",
	"searches",
}

const sampleConfig = `# seekspot configuration. Every key can also be set as SEEKSPOT_<SECTION>_<KEY>.
provider:
  api_key: ""        # or .secrets/google-maps-api-key
  timeout: 10s
  max_retries: 3
geocoder:
  timeout: 5s
  cache_ttl: 1h
search:
  max_category_queries: 5
  max_secondary_queries: 50
  query_timeout: 10s
  filter_threshold: 20
  min_score: 3
  secondary_threshold: 10
  min_raw_results: 3
session:
  backend: file      # file or sqlite
  path: .seekspot/session.json
server:
  addr: ":8080"
`

// Init creates the local state directories and a sample seekspot.yaml.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	if _, err := os.Stat("seekspot.yaml"); os.IsNotExist(err) {
		if err := os.WriteFile("seekspot.yaml", []byte(sampleConfig), 0o644); err != nil {
			return fmt.Errorf("writing seekspot.yaml: %w", err)
		}
		fmt.Println("   seekspot.yaml")
	}
	fmt.Println("Project initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if version == "" {
		version = "dev"
	}
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Serve builds the binary and starts the HTTP API.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints project metrics: Go production and test lines of code.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the tree and counts non-blank lines in Go files,
// split into production and test files. Underscore and dot directories are
// skipped, as the go tool does.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}
