package cmd

import (
    "github.com/aleph-zero/linkedlist/demo"
    "github.com/spf13/cobra"
    "os"
)

var demoCmd = &cobra.Command{
    Use:   "demo",
    Short: "Run the linked list demonstration",
    Long:  "Push, peek, pop, clear and drain a list, printing each result",
    Run: func(cmd *cobra.Command, args []string) {
        demo.Run(os.Stdout)
    },
}

func init() {
    rootCmd.AddCommand(demoCmd)
}
