// Package buildinfo exposes the version data stamped into the binary at link
// time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/gophdiary/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/gophdiary/internal/buildinfo.buildDate=$(date -u +%F) \
//	  -X github.com/dmitrijs2005/gophdiary/internal/buildinfo.buildCommit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Info is the stamped build data; unset values read "N/A".
type Info struct {
	Version string
	Date    string
	Commit  string
}

// Get returns the build data of the running binary.
func Get() Info {
	return Info{
		Version: orNA(buildVersion),
		Date:    orNA(buildDate),
		Commit:  orNA(buildCommit),
	}
}

// PrintBuildData writes the build data to w, one field per line.
func PrintBuildData(w io.Writer) {
	i := Get()
	fmt.Fprintf(w, "Build version: %s\n", i.Version)
	fmt.Fprintf(w, "Build date: %s\n", i.Date)
	fmt.Fprintf(w, "Build commit: %s\n", i.Commit)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
