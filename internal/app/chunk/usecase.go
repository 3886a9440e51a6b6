package chunk

import (
	"context"
	"errors"
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid chunk request")

// UseCase materializes a single chunk, persisting the expanded state
// only when the chunk did not exist yet.
type UseCase struct {
	States  ports.WorldStateRepository
	World   ports.WorldProvider
	Tx      ports.TxManager
	Metrics ports.GenerationMetrics
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}

	var resp Response
	err := u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		record, err := u.States.GetByWorldID(ctx, req.WorldID)
		if errors.Is(err, ports.ErrNotFound) {
			record = ports.WorldStateRecord{WorldID: req.WorldID, State: world.NewExpansionState()}
		} else if err != nil {
			return err
		}

		pos := world.Point{X: req.X, Y: req.Y}
		generated := !record.State.Has(pos)
		next, err := u.World.EnsureChunk(ctx, record.State, pos)
		if err != nil {
			return err
		}
		if generated {
			expected := record.Version
			record.State = next
			record.Version++
			if err := u.States.SaveWithVersion(ctx, record, expected); err != nil {
				if errors.Is(err, ports.ErrConflict) && u.Metrics != nil {
					u.Metrics.RecordConflict()
				}
				return err
			}
		}

		resp = Response{
			WorldID:   req.WorldID,
			Pos:       pos,
			Generated: generated,
			Chunk:     next.Chunks[pos.Key()],
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}
