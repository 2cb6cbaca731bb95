package dextrade

import (
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var nonceCounter atomic.Uint64

// nextRequestID produces the request_id for one signed call. The original
// protocol uses the wall clock in microseconds; a process-wide counter and
// a short random suffix are appended so concurrent calls in the same
// microsecond cannot collide. The signer treats the result as an ordinary
// string parameter.
func nextRequestID() string {
	micros := time.Now().UnixMicro()
	seq := nonceCounter.Add(1) % 1000
	entropy := uuid.New()
	return fmt.Sprintf("%d%03d%s", micros, seq, hex.EncodeToString(entropy[:3]))
}
