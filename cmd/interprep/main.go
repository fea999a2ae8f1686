package main

import (
	"github.com/povarna/generative-ai-agents/interprep/internal/cli"
)

func main() {
	cli.Execute()
}
