package cmd

import (
    "fmt"
    "os"
    "path/filepath"

    "github.com/spf13/cobra"
    "github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
    Use:   "linkedlist",
    Short: "A singly-linked list",
    Long:  `linkedlist: a generic singly-linked list with a demo and an interactive shell`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
    err := rootCmd.Execute()
    if err != nil {
        os.Exit(1)
    }
}

func init() {
    cobra.OnInitialize(initConfig)

    rootCmd.PersistentFlags().StringVar(
        &cfgFile, "config", "", "config file (default is $HOME/.config/linkedlist/linkedlist.yaml)")
    rootCmd.PersistentFlags().String("log.level", "info", "Log level (debug, info, warn, error)")
    rootCmd.PersistentFlags().Bool("log.json", false, "Log in JSON instead of text")

    viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log.level"))
    viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log.json"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
    if cfgFile != "" {
        viper.SetConfigFile(cfgFile) // use config file from the flag.
    } else {
        home, err := os.UserHomeDir()
        cobra.CheckErr(err)

        viper.AddConfigPath(filepath.Join(home, ".config/linkedlist"))
        viper.SetConfigType("yaml")
        viper.SetConfigName("linkedlist")
    }

    viper.AutomaticEnv() // read in environment variables that match

    if err := viper.ReadInConfig(); err != nil {
        // it's ok if we don't have a config file, we can fall back to defaults
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            fmt.Fprintln(os.Stderr, err)
            os.Exit(1)
        }
    }
}
