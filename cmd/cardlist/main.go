package main

import (
	"embed"
	"flag"
	"log/slog"
	"os"

	"github.com/cloudcopper/cardlist"
	"github.com/cloudcopper/cardlist/infra/config"
	"github.com/cloudcopper/cardlist/lib"
)

const (
	retNoErrorCode      = 0
	retGenericErrorCode = 1
)

//go:embed cardlist.yml
var fs embed.FS

func main() {
	// Use config file name from env CARDLIST_CONFIG
	// or cardlist.yml
	// Note the config file might be embedded!!!
	config.ConfigFileName = lib.GetEnvDefault("CARDLIST_CONFIG", config.ConfigFileName)

	// The first filesystem layer location (nothing if empty)
	config.TopRootFileSystemPath = lib.GetEnvDefault("CARDLIST_ROOT", config.TopRootFileSystemPath)
	// Second layer is current working dir
	// Third layer is this app embed fs
	// Last layer is the web embed fs

	// Handle command line arguments
	debug := false
	flag.StringVar(&config.Listen, "listen", config.Listen, "web server listen address")
	flag.StringVar(&config.ConfigFileName, "config", config.ConfigFileName, "config file name")
	flag.StringVar(&config.TopRootFileSystemPath, "root", config.TopRootFileSystemPath, "first layer of filesystem (optional)")
	flag.BoolVar(&debug, "debug", lib.GetEnvBool("CARDLIST_DEBUG", lib.IsDevelopment()), "debug logging")
	flag.Parse()

	//
	// Create logger
	//
	if debug {
		setDefaultLogger(slog.LevelDebug)
	}
	log := slog.Default()
	log.Info("starting")

	err := cardlist.App(log, fs)

	code := retNoErrorCode
	if err != nil {
		code = retGenericErrorCode
		if i, ok := err.(lib.ErrorCode); ok {
			code = i.Code()
		}
		log.Error("exit", slog.Int("code", code), slog.Any("err", err))
	} else {
		log.Info("exit")
	}

	os.Exit(code)
}
