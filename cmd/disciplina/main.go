package main

import (
	"github.com/joho/godotenv"

	"github.com/LuizDelio/Projeto-Disciplina/cmd/disciplina/root"
)

func main() {
	_ = godotenv.Load()
	root.Execute()
}
