// pkg/status/status.go
package status

import (
	"fmt"

	"github.com/x-linux-isp/isptool/pkg/control"
	"github.com/x-linux-isp/isptool/pkg/core"
)

// Load parses the dpkg status database at path. self is excluded the same
// way it is from the catalog.
func Load(path, self string) (control.Set, error) {
	set, err := control.ParseFile(path, self)
	if err != nil {
		return nil, &core.Error{Op: "reading package status", Err: fmt.Errorf("%w: %w", core.ErrSourceUnreadable, err)}
	}
	return set, nil
}
