package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/pattonkan/sui-go/suiclient"
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the configuration for the ledger client.
type Config struct {
	RPCURL     string
	Logger     Logger
	Registerer prometheus.Registerer
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.RPCURL == "" {
		return errors.New("config: RPCURL is required")
	}
	if c.Logger == nil {
		return errors.New("config: Logger is required")
	}
	if c.Registerer == nil {
		return errors.New("config: Registerer is required")
	}
	return nil
}

// Client implements ObjectReader, CoinReader and Inspector over a Sui
// full-node JSON-RPC endpoint.
type Client struct {
	rpc     *suiclient.ClientImpl
	logger  Logger
	metrics *Metrics
}

// NewClient creates a ledger client for the given endpoint.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Client{
		rpc:     suiclient.NewClient(cfg.RPCURL),
		logger:  cfg.Logger,
		metrics: NewMetrics(cfg.Registerer),
	}, nil
}

// ObjectMeta fetches the addressing record of one object.
func (c *Client) ObjectMeta(ctx context.Context, id *sui.ObjectId) (ObjectMeta, error) {
	start := time.Now()
	resp, err := c.rpc.GetObject(ctx, &suiclient.GetObjectRequest{
		ObjectId: id,
		Options:  &suiclient.SuiObjectDataOptions{ShowOwner: true},
	})
	c.metrics.observe("getObject", start, err)
	if err != nil {
		return ObjectMeta{}, fmt.Errorf("failed to get object %s: %w", id, err)
	}
	if resp.Data == nil {
		return ObjectMeta{}, fmt.Errorf("object %s: response carries no data", id)
	}
	meta := metaFromObjectData(resp.Data)
	c.logger.Debug("Resolved object", "id", id, "shared", meta.IsShared())
	return meta, nil
}

// metaFromObjectData classifies the object by its reported owner. Objects
// the node marks Shared are addressed by initial shared version; everything
// else is addressed by exact reference.
func metaFromObjectData(data *suiclient.SuiObjectData) ObjectMeta {
	if data.Owner != nil && data.Owner.ObjectOwnerInternal != nil && data.Owner.ObjectOwnerInternal.Shared != nil {
		ref := data.RefSharedObject()
		return ObjectMeta{Shared: &suiptb.SharedObjectArg{
			Id:                   ref.ObjectId,
			InitialSharedVersion: ref.Version,
		}}
	}
	return ObjectMeta{Owned: data.Ref()}
}

// Coins lists the coin objects of an owner, largest page first as the node
// returns them. An empty coinType selects the default gas coin.
func (c *Client) Coins(ctx context.Context, owner *sui.Address, coinType string) ([]CoinInfo, error) {
	req := &suiclient.GetCoinsRequest{Owner: owner}
	if coinType != "" {
		req.CoinType = &coinType
	}
	start := time.Now()
	resp, err := c.rpc.GetCoins(ctx, req)
	c.metrics.observe("getCoins", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get coins of %s: %w", owner, err)
	}
	out := make([]CoinInfo, 0, len(resp.Data))
	for _, coin := range resp.Data {
		out = append(out, CoinInfo{Ref: coin.Ref(), Balance: coin.Balance.Uint64()})
	}
	return out, nil
}

// Inspect simulates a transaction kind against current ledger state and
// collects the return values of every command.
func (c *Client) Inspect(ctx context.Context, sender *sui.Address, txKindBytes []byte) (InspectResult, error) {
	start := time.Now()
	resp, err := c.rpc.DevInspectTransactionBlock(ctx, &suiclient.DevInspectTransactionBlockRequest{
		SenderAddress: sender,
		TxKindBytes:   txKindBytes,
	})
	c.metrics.observe("devInspectTransactionBlock", start, err)
	if err != nil {
		return InspectResult{}, fmt.Errorf("dev inspect failed: %w", err)
	}

	var out InspectResult
	if resp.Error != "" {
		out.Error = resp.Error
	}
	for i, res := range resp.Results {
		call := CallResult{ReturnValues: make([]ReturnValue, 0, len(res.ReturnValues))}
		for j, rv := range res.ReturnValues {
			val, err := decodeReturnValue(rv)
			if err != nil {
				return InspectResult{}, fmt.Errorf("command %d return value %d: %w", i, j, err)
			}
			call.ReturnValues = append(call.ReturnValues, val)
		}
		out.Results = append(out.Results, call)
	}
	return out, nil
}
