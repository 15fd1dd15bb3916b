// Ardiya CLI — инструмент командной строки для управления
// каталогом, портфолио и заявками через HTTP API.
//
// Использование:
//
//	ardiya [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	product   Управление каталогом товаров
//	project   Управление портфолио проектов
//	quote     Просмотр запросов предложений
//	contact   Просмотр сообщений обратной связи
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diwanalardiya/ardiya/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "ardiya",
		Short:         "Ardiya CLI — building materials catalog tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewProductCmd(clientFn, outputFn),
		cli.NewProjectCmd(clientFn, outputFn),
		cli.NewQuoteCmd(clientFn, outputFn),
		cli.NewContactCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
