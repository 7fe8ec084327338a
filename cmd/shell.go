package cmd

import (
    "fmt"
    "github.com/aleph-zero/linkedlist/shell"
    "github.com/spf13/cobra"
    "github.com/spf13/viper"
    "os"
    "path/filepath"
)

var shellCmd = &cobra.Command{
    Use:   "shell",
    Short: "Run an interactive linked list shell",
    Long:  "Run an interactive shell over a single list; type help for the command list",
    Run: func(cmd *cobra.Command, args []string) {
        config := shell.NewConfig(
            shell.WithValueType(viper.GetString("shell.value-type")),
            shell.WithHistoryFile(viper.GetString("shell.history-file")),
            shell.WithLogLevel(viper.GetString("log.level")),
            shell.WithLogJSON(viper.GetBool("log.json")),
            shell.WithCollectorURL(viper.GetString("telemetry.collector-url")))
        shell.Bootstrap(config)
    },
}

const valueType = "int"

func init() {
    rootCmd.AddCommand(shellCmd)

    home, err := os.UserHomeDir()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }

    shellCmd.PersistentFlags().String("shell.value-type", valueType, "Element type of the list (int, float, string)")
    shellCmd.PersistentFlags().String("shell.history-file", filepath.Join(home, ".config/linkedlist/linkedlist.history"), "Readline history file")
    shellCmd.PersistentFlags().String("telemetry.collector-url", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"), "OTLP/HTTP collector endpoint, empty disables telemetry")

    viper.BindPFlag("shell.value-type", shellCmd.PersistentFlags().Lookup("shell.value-type"))
    viper.BindPFlag("shell.history-file", shellCmd.PersistentFlags().Lookup("shell.history-file"))
    viper.BindPFlag("telemetry.collector-url", shellCmd.PersistentFlags().Lookup("telemetry.collector-url"))
}
