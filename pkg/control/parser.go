// pkg/control/parser.go
package control

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads control blocks from r and returns every record seen.
//
// A "Package: " line starts a new tentative record. A stanza naming self
// leaves no tentative record, so none of its lines are reported.
// A "Version: " line sets the version of the tentative record. After each
// line the tentative record is appended to the result as soon as it has a
// name, so a single stanza yields several (possibly partial) entries.
// Consumers only rely on the last entry per name, see Set.Versions.
func Parse(r io.Reader, self string) (Set, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)

	var records Set
	var current Record

	for scanner.Scan() {
		line := scanner.Text()

		if name, ok := strings.CutPrefix(line, PackagePrefix); ok {
			if name == self {
				current = Record{}
			} else {
				current = Record{Name: name}
			}
		} else if version, ok := strings.CutPrefix(line, VersionPrefix); ok {
			current.Version = version
		}

		if current.Name != "" {
			records = append(records, current)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning control file: %w", err)
	}

	return records, nil
}

// ParseFile opens path (decompressing it if needed) and parses it.
func ParseFile(path, self string) (Set, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := Parse(rc, self)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
