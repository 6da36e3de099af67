package node

import (
	"fmt"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/mintlabs/go-mint/chain"
	"github.com/mintlabs/go-mint/config"
	"github.com/mintlabs/go-mint/rpc"
)

// Node assembles the ledger chain and the read-only HTTP surface. Transaction
// delivery is the consensus layer's job; the node only hosts the state and
// the query endpoints.
type Node struct {
	cfg *config.Config

	chain      *chain.Chain
	httpServer *rpc.HTTPServer

	log log15.Logger
}

func New(cfg *config.Config) *Node {
	return &Node{
		cfg: cfg,
		log: log15.New("module", "node"),
	}
}

func (n *Node) Chain() *chain.Chain {
	return n.chain
}

func (n *Node) Start() error {
	n.log.Info("Begin starting node", "dataDir", n.cfg.DataDir)

	n.chain = chain.NewChain(n.cfg.DataDir)
	if err := n.chain.Init(); err != nil {
		return errors.New(fmt.Sprintf("chain init failed, error is %s", err))
	}

	httpAddr := fmt.Sprintf("%s:%d", n.cfg.HTTPHost, n.cfg.HTTPPort)
	n.httpServer = rpc.NewHTTPServer(httpAddr, n.chain)
	if err := n.httpServer.Start(); err != nil {
		n.chain.Close()
		return errors.New(fmt.Sprintf("http server start failed, error is %s", err))
	}

	n.log.Info("Node started", "httpAddr", httpAddr)
	return nil
}

func (n *Node) Stop() error {
	n.log.Info("Begin stopping node")

	if n.httpServer != nil {
		if err := n.httpServer.Stop(); err != nil {
			return err
		}
		n.httpServer = nil
	}
	if n.chain != nil {
		if err := n.chain.Close(); err != nil {
			return err
		}
		n.chain = nil
	}

	n.log.Info("Node stopped")
	return nil
}
