package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/plotplan/plotplan/pkg/errors"
)

// fileOverride is the TOML shape for a per-type override. Only sizes and
// descriptions are overridable; directions and declared flags are part of
// the placement contract.
type fileOverride struct {
	Length      float64 `toml:"length"`
	Width       float64 `toml:"width"`
	Description string  `toml:"description"`
}

// catalogFile is the top-level TOML document: a [rooms.<type>] table per
// overridden room type.
type catalogFile struct {
	Rooms map[string]fileOverride `toml:"rooms"`
}

// Load returns the built-in catalog with overrides applied from the TOML
// file at path. Unknown room-type keys in the file are rejected so typos
// surface instead of silently doing nothing.
//
// Example file:
//
//	[rooms.kitchen]
//	length = 14
//	width = 11
//
//	[rooms.pooja_room]
//	description = "Prayer alcove"
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read catalog file %s", path)
	}

	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlanFile, err, "parse catalog file %s", path)
	}

	cat := Default()
	for key, ov := range f.Rooms {
		t := RoomType(key)
		rule, ok := cat.rules[t]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownRoomType, "catalog file %s: unknown room type: %s", path, key)
		}
		if ov.Length > 0 {
			rule.Size.Length = ov.Length
		}
		if ov.Width > 0 {
			rule.Size.Width = ov.Width
		}
		if ov.Description != "" {
			rule.Description = ov.Description
		}
		cat.rules[t] = rule
	}
	return cat, nil
}
