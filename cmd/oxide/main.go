package main

import (
	"runtime"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/oxide3d/oxide/core"
	"github.com/oxide3d/oxide/window"
)

func init() {
	runtime.LockOSThread()
}

var configuration = core.Configuration{
	App: core.AppConfiguration{
		Name:    "Hello Triangle",
		Version: core.Version{Major: 1},
	},
	Window: core.WindowConfiguration{
		Title:  "Hello Triangle Application",
		Width:  800,
		Height: 600,
	},
	Debug: core.DebugBuild,
}

func main() {
	// .env is optional, envy falls back to the process environment.
	_ = godotenv.Load()

	if level, err := log.ParseLevel(envy.Get("OXIDE_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	win, err := window.New(configuration.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	app := core.NewApplication(configuration, win)
	defer app.Destroy()

	if err := app.Init(); err != nil {
		return err
	}

	app.Run()
	return nil
}
