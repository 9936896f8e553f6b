package sitefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]brep.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sitefile: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses r as a list of sites, one "x,y" pair per line. A line is
// blank or comment-only when, after stripping anything from the first
// "//" onward and trimming whitespace, nothing remains; such lines are
// skipped. The site's line number (1-based) is stashed in its
// brep.Site.Cookie, so callers can trace a parsed site back to its
// source line.
func Read(r io.Reader) ([]brep.Site, error) {
	var sites []brep.Site
	scanner := bufio.NewScanner(r)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		site, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("sitefile: line %d: %w", lineNo, err)
		}
		site.Cookie = lineNo
		sites = append(sites, site)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sitefile: %w", err)
	}
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	return sites, nil
}

func parseLine(line string) (brep.Site, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return brep.Site{}, fmt.Errorf("expected \"x,y\", got %q", line)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return brep.Site{}, fmt.Errorf("bad x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return brep.Site{}, fmt.Errorf("bad y coordinate: %w", err)
	}
	return brep.Site{Point: geom.Pt(x, y)}, nil
}
