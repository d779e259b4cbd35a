package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/RakshithaNagaraju74/MedWell/api"
)

// Run executes a given function with dependencies supplied by the service DI graph.
// `f` must return an error or nothing.
func Run(f interface{}) error {
	options := append(api.Dependencies(), fx.NopLogger, fx.Invoke(f))
	app := fx.New(options...)
	return app.Err()
}

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operational helper for the MedWell backend",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func printJson(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
