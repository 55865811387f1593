// Package export renders parsed entity graphs in formats other than XML.
package export

import (
	"encoding/json"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	CBOR Format = "cbor"
	Dump Format = "dump"
)

// Formats lists every format Write understands.
var Formats = []Format{YAML, JSON, CBOR, Dump}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Write encodes v to w in the given format.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, `failed to encode yaml`)
		}
		return errors.Wrap(enc.Close(), `failed to flush yaml`)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), `failed to encode json`)
	case CBOR:
		data, err := cbor.Marshal(v)
		if err != nil {
			return errors.Wrap(err, `failed to encode cbor`)
		}
		_, err = w.Write(data)
		return err
	case Dump:
		dumpConfig.Fdump(w, v)
		return nil
	}
	return errors.Errorf(`unknown export format %q`, format)
}
