package main

import (
	"os"

	"github.com/g711ref/g711ref/internal/api"
	"github.com/g711ref/g711ref/internal/app"
	"github.com/g711ref/g711ref/internal/tables"
	"github.com/g711ref/g711ref/internal/verify"
	"github.com/g711ref/g711ref/pkg/shell"
)

func main() {
	app.Init() // init config and logs

	api.Init()    // init HTTP API server, disabled without listen
	tables.Init() // dump reference tables and add g711 API
	verify.Init() // check candidates from config

	if api.Enabled() {
		sig := shell.WaitSignal()
		app.Logger.Info().Str("signal", sig.String()).Msg("exit")
		return
	}

	if verify.Failed() {
		os.Exit(1)
	}
}
