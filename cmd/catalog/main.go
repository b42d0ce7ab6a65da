package main

import "github.com/cleitonmarx/symbiont-uow/internal/app"

func main() {
	err := app.NewCatalogApp().Run()
	if err != nil {
		panic(err)
	}
}
