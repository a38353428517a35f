// Command version_bump raises the release version in version.txt, commits it
// and pushes a matching annotated tag. Release builds stamp the same value
// into config.AppVersion.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

const versionFile = "version.txt"

// release is a plain major.minor.patch version, always written with a "v".
type release struct {
	Major, Minor, Patch int
}

func (r release) String() string {
	return fmt.Sprintf("v%d.%d.%d", r.Major, r.Minor, r.Patch)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/util/version_bump <patch|minor|major>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(kind string) error {
	branch, err := git("branch", "--show-current")
	if err != nil {
		return err
	}
	if branch != "main" {
		return fmt.Errorf("release bumps must be performed on 'main', current branch is %q", branch)
	}

	data, err := os.ReadFile(versionFile)
	if err != nil {
		return err
	}
	current, err := parseRelease(string(data))
	if err != nil {
		return err
	}
	next, err := bump(current, kind)
	if err != nil {
		return err
	}

	if err := os.WriteFile(versionFile, []byte(next.String()+"\n"), 0644); err != nil {
		return err
	}
	steps := [][]string{
		{"add", versionFile},
		{"commit", "-m", "Bump version to " + next.String()},
		{"tag", "-a", next.String(), "-m", "Release " + next.String()},
		{"push", "origin", next.String()},
	}
	for _, args := range steps {
		if _, err := git(args...); err != nil {
			return err
		}
	}
	fmt.Printf("Released %s (was %s)\n", next, current)
	return nil
}

// parseRelease accepts "1.2.3" or "v1.2.3". Pre-release and build suffixes
// are rejected.
func parseRelease(s string) (release, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Prerelease(v) != "" || semver.Build(v) != "" {
		return release{}, fmt.Errorf("invalid version format: %q", s)
	}
	parts := strings.Split(strings.TrimPrefix(semver.Canonical(v), "v"), ".")
	if len(parts) != 3 || semver.Canonical(v) != v {
		return release{}, fmt.Errorf("version must have three components: %q", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return release{}, fmt.Errorf("invalid version component %q: %w", p, err)
		}
		nums[i] = n
	}
	return release{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func bump(r release, kind string) (release, error) {
	switch kind {
	case "patch":
		r.Patch++
	case "minor":
		r.Minor++
		r.Patch = 0
	case "major":
		r.Major++
		r.Minor, r.Patch = 0, 0
	default:
		return r, fmt.Errorf("invalid bump type: %s", kind)
	}
	return r, nil
}

func git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}
