package dextrade

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"dextrade/pkg/core"
)

// OrderRequest describes a new order for CreateOrder. Rate is required for
// LIMIT and STOP_LIMIT orders, StopRate additionally for STOP_LIMIT.
type OrderRequest struct {
	// Pair is the trading pair, e.g. "BTCUSDT".
	Pair string
	// TradeType selects the execution mode.
	TradeType core.TradeType
	// Side is the order direction.
	Side core.OrderSide
	// Volume is the order quantity in the base asset.
	Volume *apd.Decimal
	// Rate is the limit price.
	Rate *apd.Decimal
	// StopRate is the trigger price for stop-limit orders.
	StopRate *apd.Decimal
}

// validate checks the argument combinations the protocol requires. All
// violations are reported before any network I/O.
func (r *OrderRequest) validate() error {
	if r.Pair == "" {
		return core.NewArgumentError("pair", "must not be empty")
	}
	if !r.TradeType.Valid() {
		return core.NewArgumentError("type_trade", "unknown trade type")
	}
	if !r.Side.Valid() {
		return core.NewArgumentError("type", "unknown order side")
	}
	if r.Volume == nil || r.Volume.Sign() <= 0 {
		return core.NewArgumentError("volume", "must be a positive decimal")
	}
	if r.TradeType.RequiresRate() && r.Rate == nil {
		return core.NewArgumentError("rate", "required for LIMIT and STOP_LIMIT orders")
	}
	if r.TradeType.RequiresStopRate() && r.StopRate == nil {
		return core.NewArgumentError("stop_rate", "required for STOP_LIMIT orders")
	}
	return nil
}

// params assembles the wire parameters. Amounts travel as decimal strings
// exactly as given; enum values travel as their wire ordinals.
func (r *OrderRequest) params() core.Params {
	params := core.Params{
		"pair":       r.Pair,
		"type_trade": r.TradeType.Wire(),
		"type":       r.Side.Wire(),
		"volume":     r.Volume.Text('f'),
	}
	if r.TradeType.RequiresRate() {
		params.Set("rate", r.Rate.Text('f'))
	}
	if r.TradeType.RequiresStopRate() {
		params.Set("stop_rate", r.StopRate.Text('f'))
	}
	return params
}

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, order *OrderRequest) (*core.Order, error) {
	if err := order.validate(); err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, "/private/create-order").
		SetParams(order.params()).
		SetPrivate(true)

	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var created core.Order
	if err := unwrap(body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetActiveOrders returns all currently open orders.
func (c *Client) GetActiveOrders(ctx context.Context) ([]core.Order, error) {
	req := core.NewRequest(http.MethodPost, "/private/orders").SetPrivate(true)
	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var orders []core.Order
	if err := unwrap(body, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns one order by its exchange-assigned ID.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*core.Order, error) {
	if orderID <= 0 {
		return nil, core.NewArgumentError("order_id", "must be positive")
	}

	req := core.NewRequest(http.MethodPost, "/private/get-order").
		SetParam("order_id", strconv.FormatInt(orderID, 10)).
		SetPrivate(true)

	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var order core.Order
	if err := unwrap(body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels one order by its exchange-assigned ID.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) (*core.CancelResult, error) {
	if orderID <= 0 {
		return nil, core.NewArgumentError("order_id", "must be positive")
	}

	req := core.NewRequest(http.MethodPost, "/private/delete-order").
		SetParam("order_id", strconv.FormatInt(orderID, 10)).
		SetPrivate(true)

	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	result := core.CancelResult{OrderID: orderID, Canceled: true}
	if err := unwrap(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBalances returns the balances for every asset on the account.
func (c *Client) GetBalances(ctx context.Context) ([]core.Balance, error) {
	req := core.NewRequest(http.MethodPost, "/private/balances").SetPrivate(true)
	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var balances []core.Balance
	if err := unwrap(body, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// AddressRequest describes a deposit address lookup for GetDepositAddress.
type AddressRequest struct {
	// Currency is the asset code, e.g. "BTC".
	Currency string
	// Network selects the chain for multi-chain assets. Optional.
	Network string
	// New requests a freshly generated address.
	New bool
}

// GetDepositAddress returns the deposit address for a currency.
func (c *Client) GetDepositAddress(ctx context.Context, addr *AddressRequest) (*core.DepositAddress, error) {
	if addr.Currency == "" {
		return nil, core.NewArgumentError("iso", "must not be empty")
	}

	// The server signs over "0"/"1" for the new flag, not "false"/"true".
	newFlag := 0
	if addr.New {
		newFlag = 1
	}

	req := core.NewRequest(http.MethodPost, "/private/get-address").
		SetParam("iso", addr.Currency).
		SetParam("new", newFlag).
		SetPrivate(true)
	if addr.Network != "" {
		req.SetParam("network", addr.Network)
	}

	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var result core.DepositAddress
	if err := unwrap(body, &result); err != nil {
		return nil, err
	}
	if result.Currency == "" {
		result.Currency = addr.Currency
	}
	return &result, nil
}
