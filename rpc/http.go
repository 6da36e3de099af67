package rpc

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/inconshreveable/log15"

	"github.com/mintlabs/go-mint/chain"
	"github.com/mintlabs/go-mint/rpcapi/api"
)

// HTTPServer exposes the read-only query endpoints. It holds no write path:
// every request is served from a snapshot of committed state.
type HTTPServer struct {
	addr string

	walletApi *api.WalletApi
	log       log15.Logger

	listener net.Listener
	srv      *http.Server
}

func NewHTTPServer(addr string, c *chain.Chain) *HTTPServer {
	s := &HTTPServer{
		addr:      addr,
		walletApi: api.NewWalletApi(c),
		log:       log15.New("module", "rpc/http"),
	}

	router := mux.NewRouter()
	router.HandleFunc("/v1/wallet", s.handleGetWallet).Methods(http.MethodGet)
	router.HandleFunc("/v1/wallets", s.handleGetWallets).Methods(http.MethodGet)
	router.HandleFunc("/v1/outcome", s.handleGetOutcome).Methods(http.MethodGet)

	s.srv = &http.Server{Handler: router}
	return s
}

// Router exposes the handler for tests.
func (s *HTTPServer) Router() http.Handler {
	return s.srv.Handler
}

func (s *HTTPServer) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	go func() {
		if err := s.srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("http server stopped", "error", err)
		}
	}()

	s.log.Info("http server listening", "addr", s.addr)
	return nil
}

func (s *HTTPServer) Stop() error {
	return s.srv.Close()
}

func (s *HTTPServer) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	pubKey := r.URL.Query().Get("pub_key")

	rpcWallet, err := s.walletApi.GetWallet(pubKey)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rpcWallet)
}

func (s *HTTPServer) handleGetWallets(w http.ResponseWriter, r *http.Request) {
	rpcWallets, err := s.walletApi.GetWallets()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rpcWallets)
}

func (s *HTTPServer) handleGetOutcome(w http.ResponseWriter, r *http.Request) {
	txHash := r.URL.Query().Get("hash")

	rpcOutcome, err := s.walletApi.GetOutcome(txHash)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rpcOutcome)
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func (s *HTTPServer) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Error: err.Error()}

	switch e := err.(type) {
	case api.JsonRpc2Error:
		status = http.StatusNotFound
		body.Code = e.Code
	default:
		if err == api.ErrInvalidPubKey || err == api.ErrInvalidTxHash {
			status = http.StatusBadRequest
		}
	}
	s.writeJSON(w, status, body)
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write response failed", "error", err)
	}
}
