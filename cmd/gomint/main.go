package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/inconshreveable/log15"

	"github.com/mintlabs/go-mint/common"
	"github.com/mintlabs/go-mint/config"
	"github.com/mintlabs/go-mint/keys"
	"github.com/mintlabs/go-mint/node"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "keygen" {
		runKeygen()
		return
	}

	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %s\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	n := node.New(cfg)
	if err := n.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start node failed: %s\n", err)
		os.Exit(1)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	if err := n.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "stop node failed: %s\n", err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	logLevel, err := log15.LvlFromString(cfg.LogLevel)
	if err != nil {
		logLevel = log15.LvlInfo
	}

	log15.Root().SetHandler(log15.MultiHandler(
		log15.LvlFilterHandler(logLevel, log15.StdoutHandler),
		common.LogHandler(cfg.DataDir, "runlog", "gomint.log", cfg.LogLevel),
	))
}

func runKeygen() {
	keyPair, err := keys.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate keypair failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("mnemonic:  %s\n", keyPair.Mnemonic)
	fmt.Printf("address:   %s\n", keyPair.Address)
	fmt.Printf("publicKey: %x\n", keyPair.PublicKey)
	fmt.Printf("secretKey: %x\n", keyPair.PrivateKey)
}
