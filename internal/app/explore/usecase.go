package explore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid explore request")

const maxExploreRadius = 4

// UseCase expands the world around a center point. Chunks already
// present are untouched; missing ones are generated and persisted in a
// single optimistic write.
type UseCase struct {
	States  ports.WorldStateRepository
	World   ports.WorldProvider
	Tx      ports.TxManager
	Metrics ports.GenerationMetrics
	Now     func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.Radius < 0 || req.Radius > maxExploreRadius {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var resp Response
	err := u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		record, err := u.States.GetByWorldID(ctx, req.WorldID)
		if errors.Is(err, ports.ErrNotFound) {
			record = ports.WorldStateRecord{WorldID: req.WorldID, State: world.NewExpansionState()}
		} else if err != nil {
			return err
		}

		center := world.Point{X: req.X, Y: req.Y}
		before := len(record.State.Chunks)
		next, err := u.World.EnsureRadius(ctx, record.State, center, req.Radius)
		if err != nil {
			return err
		}
		generated := len(next.Chunks) - before
		if generated > 0 {
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

		season, remaining := u.World.SeasonNow(nowFn().UTC())
		resp = Response{
			WorldID:             req.WorldID,
			Center:              center,
			Radius:              req.Radius,
			GeneratedChunks:     generated,
			TotalChunks:         len(next.Chunks),
			Regions:             len(next.Regions),
			Season:              season,
			SeasonEndsInSeconds: int(remaining / time.Second),
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}
