package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged random draws.
// Every Intn call is logged at debug level with its bound and result, giving
// a full audit trail of the randomness consumed by a battle.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to
// logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn draws from the wrapped Source and logs the result at debug level.
//
// Precondition: n > 0.
// Postcondition: Returns a value in [0, n); the draw is logged.
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("random draw",
		zap.Int("bound", n),
		zap.Int("value", v),
	)
	return v
}
