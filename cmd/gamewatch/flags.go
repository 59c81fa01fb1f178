package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aleister1102/gamewatch/internal/gamedata"
)

type AppFlags struct {
	Monitor          string
	GlobalConfigFile string
}

func monitorNames() []string {
	names := make([]string, 0, len(gamedata.Resources())+1)
	for _, res := range gamedata.Resources() {
		names = append(names, res.Name)
	}
	return append(names, "marketstats")
}

func ParseFlags() AppFlags {
	names := monitorNames()

	monitorFlag := flag.String("monitor", "", "Monitor to run: "+strings.Join(names, ", "))
	monitorFlagAlias := flag.String("m", "", "Alias for -monitor")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	flag.Parse()

	flags := AppFlags{}

	if *monitorFlag != "" {
		flags.Monitor = *monitorFlag
	} else if *monitorFlagAlias != "" {
		flags.Monitor = *monitorFlagAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if flags.Monitor == "" {
		fmt.Fprintf(os.Stderr, "[FATAL] -monitor argument is required (%s)\n", strings.Join(names, ", "))
		os.Exit(1)
	}

	valid := false
	for _, name := range names {
		if flags.Monitor == name {
			valid = true
			break
		}
	}
	if !valid {
		fmt.Fprintf(os.Stderr, "[FATAL] unknown monitor '%s' (expected one of: %s)\n", flags.Monitor, strings.Join(names, ", "))
		os.Exit(1)
	}

	return flags
}
