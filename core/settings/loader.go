package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FSLoader returns a Loader that reads "<dir>/<market>.json" from fsys.
// It works with embed.FS asset directories as well as os.DirFS. A missing
// file means the market has no override; a malformed file is an error the
// resolver logs and recovers from.
func FSLoader(fsys fs.FS, dir string) Loader {
	return func(_ context.Context, market string) (map[string]any, error) {
		if !validMarketName(market) {
			return nil, nil
		}

		name := path.Join(dir, market+".json")
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("settings: read %s: %w", name, err)
		}

		var partial map[string]any
		if err := json.Unmarshal(data, &partial); err != nil {
			return nil, fmt.Errorf("settings: parse %s: %w", name, err)
		}

		return partial, nil
	}
}

// validMarketName rejects identifiers that could escape the asset directory.
func validMarketName(market string) bool {
	if market == "" || market == "." || market == ".." {
		return false
	}
	return !strings.ContainsAny(market, "/\\")
}
