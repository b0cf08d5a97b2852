package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/joho/godotenv"
)

var Version = "0.3.0"

var Info = map[string]any{
	"version": Version,
}

func Init() {
	var confs flagConfig
	var envPath string
	var version bool

	flag.Var(&confs, "config", "g711ref config (path to file or raw text), support multiple")
	flag.StringVar(&envPath, "env", ".env", "Load environment variables from file (if exists)")
	flag.BoolVar(&version, "version", false, "Print the version of the application and exit")
	flag.Parse()

	revision, vcsTime := readRevisionTime()

	if version {
		fmt.Printf("g711ref version %s (%s) %s/%s\n", Version, revision, runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// .env must be loaded before configs, they may use ${VAR} from it
	envErr := loadEnv(envPath)

	initConfig(confs)
	initLogger()

	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	Logger.Info().Str("version", Version).Str("platform", platform).Str("revision", revision).Msg("g711ref")
	Logger.Debug().Str("version", runtime.Version()).Str("vcs.time", vcsTime).Msg("build")

	if envErr != nil {
		Logger.Warn().Err(envErr).Msg("[app] read env")
	}

	if ConfigPath != "" {
		Logger.Info().Str("path", ConfigPath).Msg("config")
	}

	Info["revision"] = revision
}

// loadEnv skips missing file, existing variables are not overwritten
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

func readRevisionTime() (revision, vcsTime string) {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if len(setting.Value) > 7 {
					revision = setting.Value[:7]
				} else {
					revision = setting.Value
				}
			case "vcs.time":
				vcsTime = setting.Value
			case "vcs.modified":
				if setting.Value == "true" {
					revision += ".dirty"
				}
			}
		}
	}
	return
}
