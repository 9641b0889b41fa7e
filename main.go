package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	hiveconfiguration "github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/memlist/packages/configuration"
	"github.com/iotaledger/memlist/packages/datastructure"
	"github.com/iotaledger/memlist/packages/listscript"
	"github.com/iotaledger/memlist/packages/memory"
)

func main() {
	flag.Parse()

	config, err := configuration.Load(flag.CommandLine, *configDirPath, *configName)
	if err != nil {
		// the logger is not initialized at this stage
		fmt.Println(err.Error())
		os.Exit(1)
	}
	configuration.FillParameters(config, &ScriptParameters, CfgScriptPrefix)
	configuration.FillParameters(config, &ListParameters, CfgListPrefix)

	if err = logger.InitGlobalLogger(hiveconfiguration.New()); err != nil {
		panic(err)
	}
	log := logger.NewLogger("MemList")
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, log); err != nil {
		log.Errorf("%+v", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	list := datastructure.New()
	list.Events.NodeAdded.Attach(event.NewClosure(func(nodeEvent *datastructure.NodeEvent) {
		log.Debugf("added %s", nodeEvent)
	}))
	list.Events.NodeRemoved.Attach(event.NewClosure(func(nodeEvent *datastructure.NodeEvent) {
		log.Debugf("removed %s", nodeEvent)
	}))

	initialBlocks, err := parseInitialBlocks(ListParameters.InitialBlocks)
	if err != nil {
		return err
	}
	for _, block := range initialBlocks {
		list.AddLast(block)
	}

	if ScriptParameters.Path != "" {
		commands, err := readScript(ScriptParameters.Path)
		if err != nil {
			return err
		}

		runner := listscript.NewRunner(list, log, listscript.WithStopOnError(ScriptParameters.StopOnError))
		if err = runner.Run(ctx, commands); err != nil {
			return errors.Wrapf(err, "failed to run %s", ScriptParameters.Path)
		}
		log.Infof("applied %d commands, %d failed", runner.Metrics.Applied(), runner.Metrics.Failed())
	}

	log.Infof("list: [%s] size=%d", list, list.GetSize())

	return nil
}

func readScript(path string) ([]*listscript.Command, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open script %s", path)
	}
	defer file.Close()

	commands, err := listscript.Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse script %s", path)
	}

	return commands, nil
}

// parseInitialBlocks parses blocks in the form "base:length".
func parseInitialBlocks(values []string) (blocks []memory.Block, err error) {
	for _, value := range values {
		baseAddress, length, found := strings.Cut(strings.TrimSpace(value), ":")
		if !found {
			return nil, errors.Wrapf(memory.ErrInvalidBlock, "%q is not of the form base:length", value)
		}

		block, parseErr := memory.ParseBlock(baseAddress, length)
		if parseErr != nil {
			return nil, parseErr
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}
