// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cad-engine CLI.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cad-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "cad-engine",
	Short: "Generate CAD drawings and meshes from text descriptions",
	Long: `cad-engine turns free-text furniture and building descriptions (Indonesian
or English) into technical drawings and 3D meshes. Descriptions are parsed
into a canonical specification, validated against a local knowledge index
of dimensional standards, and rendered as SVG/DXF views plus optional
STL/OBJ meshes.

The generation pipeline is the generate subcommand; the knowledge
subcommand builds and queries the standards index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cad-engine.yaml or ~/.config/cad-engine/config.yaml)")
	rootCmd.PersistentFlags().String("knowledge-dir", "", "directory holding the knowledge index (default: knowledge)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cad-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cad-engine"))
		}
	}

	viper.SetDefault("knowledge.dir", "knowledge")
	viper.SetDefault("knowledge.docs_dir", "docs/standards")
	viper.SetDefault("output.dir", "output")

	viper.SetEnvPrefix("CAD_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// knowledgeDir resolves the index directory: flag, then config, then the
// built-in default.
func knowledgeDir() string {
	if dir, _ := rootCmd.PersistentFlags().GetString("knowledge-dir"); dir != "" {
		return dir
	}
	return viper.GetString("knowledge.dir")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
