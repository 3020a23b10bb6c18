/*
main.go

wheel picks one option at random from a short list typed at the terminal.
*/
package main

import (
	"github.com/ARTLEST/decision-wheel/cmd"
	"github.com/ARTLEST/decision-wheel/pkg/logger"
)

func main() {
	logger.Initialize(logger.DefaultLevel)
	logger.L().Debug("Logger is alive before CLI runs")

	cmd.Execute()
}
