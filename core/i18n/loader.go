package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FSLoader returns a Loader that reads "<dir>/<locale>.json" from fsys,
// typically an embed.FS asset directory. A missing file means no dictionary
// exists for the locale; a malformed file is an error the bundle logs and
// recovers from.
func FSLoader(fsys fs.FS, dir string) Loader {
	return func(_ context.Context, locale string) (Dictionary, error) {
		if !validLocaleName(locale) {
			return nil, nil
		}

		name := path.Join(dir, locale+".json")
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}

		var dict Dictionary
		if err := json.Unmarshal(data, &dict); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}

		return dict, nil
	}
}

// MustParseDictionary decodes an embedded default dictionary at startup.
// It panics on malformed data: the default dictionary ships inside the
// binary, so a parse failure is a build defect, not a runtime condition.
func MustParseDictionary(data []byte) Dictionary {
	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		panic(fmt.Errorf("i18n: parse default dictionary: %w", err))
	}
	return dict
}

func validLocaleName(locale string) bool {
	if locale == "" || locale == "." || locale == ".." {
		return false
	}
	return !strings.ContainsAny(locale, "/\\")
}
