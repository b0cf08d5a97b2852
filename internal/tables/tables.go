package tables

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/g711ref/g711ref/internal/api"
	"github.com/g711ref/g711ref/internal/app"
	"github.com/g711ref/g711ref/pkg/g711"
	"github.com/g711ref/g711ref/pkg/oracle"
	"github.com/rs/zerolog"
)

func Init() {
	var cfg struct {
		Mod struct {
			Dump string `yaml:"dump"`
		} `yaml:"tables"`
	}

	app.LoadConfig(&cfg)

	log = app.GetLogger("tables")

	if cfg.Mod.Dump != "" {
		if _, err := Dump(cfg.Mod.Dump); err != nil {
			log.Error().Err(err).Msg("[tables] dump")
		}
	}

	api.HandleFunc("api/g711/encode", apiEncode)
	api.HandleFunc("api/g711/decode", apiDecode)
	api.HandleFunc("api/g711/table", apiTable)
}

var log zerolog.Logger

// Dump writes raw reference tables for both laws:
// pcma_encode.bin, pcma_decode.bin, pcmu_encode.bin, pcmu_decode.bin
func Dump(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string

	for _, law := range g711.Laws {
		encode, decode, err := oracle.Reference(law)
		if err != nil {
			return nil, err
		}

		for _, table := range []struct {
			dir  oracle.Direction
			data []byte
		}{
			{oracle.DirectionEncode, encode.Bytes()},
			{oracle.DirectionDecode, decode.Bytes()},
		} {
			path := filepath.Join(dir, Filename(law, table.dir))
			if err = os.WriteFile(path, table.data, 0644); err != nil {
				return nil, err
			}

			log.Info().Str("path", path).Stringer("crc", oracle.Sum(table.data)).Msg("[tables] dump")

			paths = append(paths, path)
		}
	}

	return paths, nil
}

// Filename - ex. "pcmu_decode.bin"
func Filename(law g711.Law, dir oracle.Direction) string {
	return strings.ToLower(law.String()) + "_" + string(dir) + ".bin"
}
