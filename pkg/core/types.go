package core

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade. The ordinal
// values are the wire encoding and must not be reordered.
const (
	// SideBuy indicates an order to purchase an asset.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell an asset.
	SideSell
)

// Wire returns the integer the exchange expects for this side.
func (s OrderSide) Wire() int {
	return int(s)
}

// Valid reports whether the side is one of the defined constants.
func (s OrderSide) Valid() bool {
	return s == SideBuy || s == SideSell
}

// String returns the string representation of the order side ("BUY" or "SELL").
func (s OrderSide) String() string {
	return [...]string{"BUY", "SELL"}[s]
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide. The exchange
// encodes the side as its wire ordinal; the string forms are accepted as
// well for payloads that spell them out.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0", `"BUY"`, `"buy"`:
		*s = SideBuy
	case "1", `"SELL"`, `"sell"`:
		*s = SideSell
	default:
		return fmt.Errorf("unknown order side: %s", data)
	}
	return nil
}

// TradeType represents how an order executes. The ordinal values are the
// wire encoding and must not be reordered.
type TradeType int

const (
	// TradeLimit executes at a specified rate or better.
	TradeLimit TradeType = iota
	// TradeMarket executes immediately at the best available rate.
	TradeMarket
	// TradeStopLimit places a limit order once the stop rate is reached.
	TradeStopLimit
	// TradeQuickMarket executes against the quote amount instead of the base.
	TradeQuickMarket
	// TradeHiddenLimit executes at a specified rate without showing in the book.
	TradeHiddenLimit
)

// Wire returns the integer the exchange expects for this trade type.
func (t TradeType) Wire() int {
	return int(t)
}

// Valid reports whether the trade type is one of the defined constants.
func (t TradeType) Valid() bool {
	return t >= TradeLimit && t <= TradeHiddenLimit
}

// RequiresRate reports whether orders of this type must carry a rate.
func (t TradeType) RequiresRate() bool {
	return t == TradeLimit || t == TradeStopLimit
}

// RequiresStopRate reports whether orders of this type must carry a stop rate.
func (t TradeType) RequiresStopRate() bool {
	return t == TradeStopLimit
}

// String returns the string representation of the trade type.
func (t TradeType) String() string {
	return [...]string{"LIMIT", "MARKET", "STOP_LIMIT", "QUICK_MARKET", "HIDDEN_LIMIT"}[t]
}

// MarshalJSON implements json.Marshaler for TradeType.
func (t TradeType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for TradeType. The exchange
// encodes the trade type as its wire ordinal; the string forms are
// accepted as well for payloads that spell them out.
func (t *TradeType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0", `"LIMIT"`, `"limit"`:
		*t = TradeLimit
	case "1", `"MARKET"`, `"market"`:
		*t = TradeMarket
	case "2", `"STOP_LIMIT"`, `"stop_limit"`:
		*t = TradeStopLimit
	case "3", `"QUICK_MARKET"`, `"quick_market"`:
		*t = TradeQuickMarket
	case "4", `"HIDDEN_LIMIT"`, `"hidden_limit"`:
		*t = TradeHiddenLimit
	default:
		return fmt.Errorf("unknown trade type: %s", data)
	}
	return nil
}

// Symbol describes one trading pair listed on the exchange.
type Symbol struct {
	// Pair is the trading pair identifier (e.g., "BTCUSDT").
	Pair string `json:"pair"`
	// Base is the asset being traded.
	Base string `json:"base"`
	// Quote is the asset the pair is priced in.
	Quote string `json:"quote"`
}

// Ticker represents current market data for a trading pair.
type Ticker struct {
	Pair string `json:"pair"`
	// Last is the price of the most recent trade.
	Last apd.Decimal `json:"last"`
	// High is the highest price in the last 24 hours.
	High apd.Decimal `json:"high"`
	// Low is the lowest price in the last 24 hours.
	Low apd.Decimal `json:"low"`
	// Volume24H is the total trading volume in the last 24 hours.
	Volume24H apd.Decimal `json:"volume_24H"`
	// Open is the price 24 hours ago.
	Open apd.Decimal `json:"open"`
}

// BookEntry is a single price level in the order book.
type BookEntry struct {
	// Rate is the limit price for this level.
	Rate apd.Decimal `json:"rate"`
	// Volume is the total quantity available at this rate.
	Volume apd.Decimal `json:"volume"`
	// Count is the number of orders aggregated at this level.
	Count int64 `json:"count"`
}

// OrderBook is a depth snapshot for a trading pair. Buys are sorted by
// rate descending and sells ascending, as delivered by the exchange.
type OrderBook struct {
	Buy  []BookEntry `json:"buy"`
	Sell []BookEntry `json:"sell"`
}

// PublicTrade is one executed trade from the public trade history.
type PublicTrade struct {
	// Side indicates whether the taker bought or sold.
	Side OrderSide `json:"type"`
	// Rate is the execution price.
	Rate apd.Decimal `json:"rate"`
	// Volume is the amount executed.
	Volume apd.Decimal `json:"volume"`
	// Timestamp is the execution time in seconds since epoch.
	Timestamp int64 `json:"timestamp"`
}

// Order represents an exchange order as returned by the private endpoints.
type Order struct {
	// ID is the exchange-assigned order identifier.
	ID int64 `json:"id"`
	// Pair is the trading pair for this order.
	Pair string `json:"pair"`
	// Side indicates whether this is a buy or sell order.
	Side OrderSide `json:"type"`
	// TradeType defines how the order executes.
	TradeType TradeType `json:"type_trade"`
	// Volume is the total order quantity.
	Volume apd.Decimal `json:"volume"`
	// Rate is the limit price, zero for market orders.
	Rate apd.Decimal `json:"rate"`
	// StopRate is the trigger price for stop-limit orders.
	StopRate apd.Decimal `json:"stop_rate"`
	// VolumeDone is the amount that has been executed.
	VolumeDone apd.Decimal `json:"volume_done"`
	// Timestamp is when the order was created, in seconds since epoch.
	Timestamp int64 `json:"time_create"`
}

// Balance represents account balance for a single asset.
type Balance struct {
	// Currency is the asset code (e.g., "BTC").
	Currency string `json:"currency"`
	// Total is the full balance including amounts locked in orders.
	Total apd.Decimal `json:"total"`
	// Available is the balance free for trading.
	Available apd.Decimal `json:"available"`
}

// DepositAddress is the deposit target for one currency, optionally on a
// specific network.
type DepositAddress struct {
	Currency string `json:"iso"`
	Address  string `json:"address"`
	// Memo carries the destination tag for currencies that require one.
	Memo string `json:"memo,omitempty"`
	// Network is the chain the address belongs to, when the currency
	// exists on more than one.
	Network string `json:"network,omitempty"`
}

// CancelResult is the acknowledgement returned when an order is canceled.
type CancelResult struct {
	OrderID int64 `json:"order_id"`
	// Canceled reports whether the exchange accepted the cancellation.
	Canceled bool `json:"canceled"`
}
