package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/t-kuni/gencmake/cmd"
	"github.com/t-kuni/gencmake/infrastructure/system/log"
)

func main() {
	godotenv.Load(".env")
	log.InitLogger()

	err := cmd.NewRootCommand().CobraCommand.Execute()
	if err != nil {
		os.Exit(1)
	}
}
