// command/grants.go
package command

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jupiterai/jupiterctl/reconcile"
)

// grantFile is the on-disk edit format for one user's desired grants: a table
// per model id. Excluded models may simply be deleted from the file; a missing
// entry and included=false mean the same thing to the planner.
type grantFile struct {
	Models map[string]reconcile.DesiredGrant `toml:"models"`
}

// loadGrantFile reads a desired grant set from a TOML file.
func loadGrantFile(path string) (map[int64]reconcile.DesiredGrant, error) {
	var file grantFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("reading grant file %s: %w", path, err)
	}

	desired := make(map[int64]reconcile.DesiredGrant, len(file.Models))
	for key, grant := range file.Models {
		modelID, err := strconv.ParseInt(key, 10, 64)
		if err != nil || modelID <= 0 {
			return nil, fmt.Errorf("grant file %s: %q is not a model id", path, key)
		}
		desired[modelID] = grant
	}
	return desired, nil
}

// writeGrantFile renders a desired grant set in the same format loadGrantFile
// reads, so "assignments grants" output can be edited and fed back to apply.
func writeGrantFile(w io.Writer, desired map[int64]reconcile.DesiredGrant) error {
	file := grantFile{Models: make(map[string]reconcile.DesiredGrant, len(desired))}
	for modelID, grant := range desired {
		file.Models[strconv.FormatInt(modelID, 10)] = grant
	}
	return toml.NewEncoder(w).Encode(file)
}

func writeGrantFileTo(path string, desired map[int64]reconcile.DesiredGrant) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeGrantFile(f, desired)
}
