package main

import "github.com/cleitonmarx/symbiont-ai-repoindexer/internal/app"

func main() {
	err := app.NewRepoIndexerApp().Run()
	if err != nil {
		panic(err)
	}
}
