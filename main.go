// main is the entrypoint for the dietradar CLI.
package main

import (
	"github.com/huangsam/dietradar/cmd"
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/internal/runstore"
)

func main() {
	err := cmd.Execute()
	runstore.CloseStores()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
