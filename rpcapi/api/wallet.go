package api

import (
	"strconv"

	"github.com/inconshreveable/log15"

	"github.com/mintlabs/go-mint/chain"
	"github.com/mintlabs/go-mint/common/types"
	"github.com/mintlabs/go-mint/wallet"
)

func NewWalletApi(c *chain.Chain) *WalletApi {
	return &WalletApi{
		chain: c,
		log:   log15.New("module", "rpc_api/wallet_api"),
	}
}

// WalletApi is the read-only query surface over committed ledger state. It
// only ever works on snapshots; it can never observe an in-flight fork.
type WalletApi struct {
	chain *chain.Chain
	log   log15.Logger
}

func (w WalletApi) String() string {
	return "WalletApi"
}

type RpcWallet struct {
	PubKey  string `json:"pubKey"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

func walletToRpcWallet(w *wallet.Wallet) *RpcWallet {
	return &RpcWallet{
		PubKey:  w.PubKey.String(),
		Name:    w.Name,
		Balance: strconv.FormatUint(w.Balance, 10),
	}
}

type RpcOutcome struct {
	TxHash  string `json:"txHash"`
	Success bool   `json:"success"`

	ErrorCode        *uint8 `json:"errorCode,omitempty"`
	ErrorDescription string `json:"errorDescription,omitempty"`
}

// GetWallet returns the wallet for a hex public key, or ErrWalletNotFound.
func (api *WalletApi) GetWallet(pubKey string) (*RpcWallet, error) {
	addr, err := types.HexToAddress(pubKey)
	if err != nil {
		return nil, ErrInvalidPubKey
	}

	w, err := api.chain.GetWallet(addr)
	if err != nil {
		api.log.Error("GetWallet failed", "error", err, "pubKey", pubKey)
		return nil, err
	}
	if w == nil {
		return nil, ErrWalletNotFound
	}
	return walletToRpcWallet(w), nil
}

// GetWallets dumps all wallets from the latest committed state.
func (api *WalletApi) GetWallets() ([]*RpcWallet, error) {
	wallets, err := api.chain.GetWallets()
	if err != nil {
		api.log.Error("GetWallets failed", "error", err)
		return nil, err
	}

	rpcWallets := make([]*RpcWallet, 0, len(wallets))
	for _, w := range wallets {
		rpcWallets = append(rpcWallets, walletToRpcWallet(w))
	}
	return rpcWallets, nil
}

// GetOutcome returns the recorded execution outcome of a transaction hash.
func (api *WalletApi) GetOutcome(txHash string) (*RpcOutcome, error) {
	h, err := types.HexToHash(txHash)
	if err != nil {
		return nil, ErrInvalidTxHash
	}

	outcome, err := api.chain.GetExecutionOutcome(h)
	if err != nil {
		api.log.Error("GetOutcome failed", "error", err, "txHash", txHash)
		return nil, err
	}
	if outcome == nil {
		return nil, ErrOutcomeNotFound
	}

	rpcOutcome := &RpcOutcome{
		TxHash:  h.Hex(),
		Success: outcome.Err == nil,
	}
	if outcome.Err != nil {
		code := outcome.Err.Code
		rpcOutcome.ErrorCode = &code
		rpcOutcome.ErrorDescription = outcome.Err.Description
	}
	return rpcOutcome, nil
}
