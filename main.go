package main

import (
	"github.com/labfi/labfi-api/config"
	"github.com/labfi/labfi-api/internal/app"
)

func main() {

	// create and initialize the app
	app, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err)
	}

	// run the app
	// This will start the server and handle routes as defined in the app package.
	err = app.Run()
	if err != nil {
		panic(err)
	}
}
