package oracle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/g711ref/g711ref/pkg/g711"
	"github.com/g711ref/g711ref/pkg/shell"
	zaf "github.com/zaf/g711"
)

// Codec - in process G.711 implementation
type Codec struct {
	Encode func(law g711.Law, sample int16) byte
	Decode func(law g711.Law, code byte) int16
}

var ErrUnknownSource = errors.New("oracle: unknown source")

var builtins = map[string]Codec{}
var builtinsMu sync.Mutex

// RegisterBuiltin - add codec available as "builtin:name" source
func RegisterBuiltin(name string, codec Codec) {
	builtinsMu.Lock()
	builtins[name] = codec
	builtinsMu.Unlock()
}

func getBuiltin(name string) (Codec, bool) {
	builtinsMu.Lock()
	codec, ok := builtins[name]
	builtinsMu.Unlock()
	return codec, ok
}

func init() {
	RegisterBuiltin("reference", Codec{
		Encode: g711.Law.Encode,
		Decode: g711.Law.Decode,
	})

	// github.com/zaf/g711, table based codec used by many SIP projects
	RegisterBuiltin("zaf", Codec{
		Encode: func(law g711.Law, sample int16) byte {
			if law == g711.PCMA {
				return zaf.EncodeAlawFrame(sample)
			}
			return zaf.EncodeUlawFrame(sample)
		},
		Decode: func(law g711.Law, code byte) int16 {
			if law == g711.PCMA {
				return zaf.DecodeAlawFrame(code)
			}
			return zaf.DecodeUlawFrame(code)
		},
	})
}

// ReadEncodeTable support sources:
// - builtin:name  - registered codec
// - file:path     - raw table
// - exec:command  - raw table from command stdout
func ReadEncodeTable(ctx context.Context, law g711.Law, source string) (*EncodeTable, error) {
	scheme, rest, _ := strings.Cut(source, ":")
	if scheme == "builtin" {
		codec, ok := getBuiltin(rest)
		if !ok || codec.Encode == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
		}
		return NewEncodeTable(func(sample int16) byte {
			return codec.Encode(law, sample)
		}), nil
	}

	b, err := readRaw(ctx, scheme, rest)
	if err != nil {
		return nil, err
	}
	return ParseEncodeTable(b)
}

// ReadDecodeTable support same sources as ReadEncodeTable
func ReadDecodeTable(ctx context.Context, law g711.Law, source string) (*DecodeTable, error) {
	scheme, rest, _ := strings.Cut(source, ":")
	if scheme == "builtin" {
		codec, ok := getBuiltin(rest)
		if !ok || codec.Decode == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
		}
		return NewDecodeTable(func(code byte) int16 {
			return codec.Decode(law, code)
		}), nil
	}

	b, err := readRaw(ctx, scheme, rest)
	if err != nil {
		return nil, err
	}
	return ParseDecodeTable(b)
}

func readRaw(ctx context.Context, scheme, rest string) ([]byte, error) {
	switch scheme {
	case "file":
		return os.ReadFile(rest)
	case "exec":
		cmd, err := shell.NewCommand(ctx, rest)
		if err != nil {
			return nil, err
		}
		defer cmd.Close()
		return cmd.Output()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSource, scheme)
}
