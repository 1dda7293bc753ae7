package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/givepool/givepool/internal/model"
)

// Intent is the confirmed dialog output handed to a Submitter.
type Intent struct {
	Reference string      `json:"reference"`
	PoolID    string      `json:"pool_id"`
	PoolTitle string      `json:"pool_title"`
	Amount    float64     `json:"amount"`
	Asset     model.Asset `json:"asset"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewIntent validates dialog input against the pool collection.
func NewIntent(pools []model.Pool, poolID, amountText string, asset model.Asset) (Intent, error) {
	pool, ok := model.FindPool(pools, poolID)
	if !ok {
		return Intent{}, fmt.Errorf("%w: %q", ErrPoolNotFound, poolID)
	}
	if !asset.Valid() {
		return Intent{}, fmt.Errorf("%w: %q", ErrUnknownAsset, string(asset))
	}
	amount, err := ParseAmount(amountText)
	if err != nil {
		return Intent{}, err
	}
	return Intent{
		Reference: uuid.NewString(),
		PoolID:    pool.ID,
		PoolTitle: pool.Title,
		Amount:    amount,
		Asset:     asset,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Submitter receives confirmed donation intents.
type Submitter interface {
	Submit(ctx context.Context, in Intent) error
}

// LogSubmitter records intents in the log and does nothing else. It stands
// in until a transaction-submission backend exists.
type LogSubmitter struct {
	Logger *zap.Logger
}

// Submit implements Submitter.
func (s LogSubmitter) Submit(ctx context.Context, in Intent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("donation intent",
		zap.String("reference", in.Reference),
		zap.String("pool_id", in.PoolID),
		zap.String("pool", in.PoolTitle),
		zap.Float64("amount", in.Amount),
		zap.String("asset", string(in.Asset)),
	)
	return nil
}
