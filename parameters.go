package main

import (
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/memlist/packages/configuration"
)

const (
	// CfgScriptPrefix is the prefix of the script parameters.
	CfgScriptPrefix = "script"
	// CfgListPrefix is the prefix of the list parameters.
	CfgListPrefix = "list"
)

var (
	configName    = flag.StringP("config", "c", "config", "Filename of the config file without the file extension")
	configDirPath = flag.StringP("config-dir", "d", ".", "Path to the directory containing the config file")
)

// ScriptParameters contains the parameters of the script that is applied to the list.
var ScriptParameters = struct {
	// Path is the file the commands are read from.
	Path string `default:"" usage:"path of the script that is applied to the list, empty to only apply the initial blocks"`
	// StopOnError aborts the script at the first failing command.
	StopOnError bool `default:"false" usage:"abort the script at the first failing command"`
}{}

// ListParameters contains the parameters of the list itself.
var ListParameters = struct {
	// InitialBlocks are appended to the list before the script runs.
	InitialBlocks []string `default:"" usage:"blocks (base:length) that are appended to the list before the script runs"`
}{}

func init() {
	configuration.DefineParameters(&ScriptParameters, CfgScriptPrefix)
	configuration.DefineParameters(&ListParameters, CfgListPrefix)
}
