// Command routeshim launches a program through the routing shim. With the
// activation variable set and a routing daemon listening, the launch is
// redirected into the daemon's target context; otherwise the program runs
// locally exactly as if invoked directly.
//
//	routeshim [-config file] [-shell] -- prog [args...]
//	routeshim -shell -- 'echo hi | wc -c'
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/routeshim/internal/config"
	"github.com/danmuck/routeshim/internal/logging"
	"github.com/danmuck/routeshim/internal/routing"
	"github.com/danmuck/routeshim/internal/shim"
)

func main() {
	cfgPath := flag.String("config", "", "path to routeshim TOML config")
	shell := flag.Bool("shell", false, "run the arguments as one shell command string")
	flag.Usage = usage
	flag.Parse()

	logging.ConfigureRuntime()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	client := routing.NewClient(cfg.Transport())
	sh, err := shim.New(shim.ResolveCapabilities(), client)
	if err != nil {
		// An unresolved primitive is unrecoverable; refuse to limp along.
		log.Fatal().Err(err).Msg("primitive resolution failed")
	}

	if *shell {
		command, err := shellCommand(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(2)
		}
		status, err := sh.System(command)
		if err != nil {
			log.Error().Err(err).Msg("shell invocation failed")
		}
		os.Exit(status)
	}

	// Only reached when exec failed: a routed decision or a successful local
	// exec never returns.
	err = sh.Execvp(args[0], args)
	log.Fatal().Err(err).Str("command", args[0]).Msg("exec failed")
}

var errShellArgs = errors.New("-shell takes exactly one command string")

// shellCommand extracts the single command string for -shell mode. Joining
// multiple arguments would collapse the caller's quoting, so anything other
// than exactly one argument is rejected.
func shellCommand(args []string) (string, error) {
	if len(args) != 1 {
		return "", errShellArgs
	}
	return args[0], nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: routeshim [-config file] [-shell] -- prog [args...]\n")
	flag.PrintDefaults()
}
