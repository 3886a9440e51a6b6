package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	States  ports.WorldStateRepository
	World   ports.WorldProvider
	Content ports.ContentProvider
	Now     func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	resp := Response{WorldID: req.WorldID}
	record, err := u.States.GetByWorldID(ctx, req.WorldID)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		// a world nobody explored yet is empty, not an error
	case err != nil:
		return Response{}, err
	default:
		resp.Chunks = len(record.State.Chunks)
		resp.Regions = len(record.State.Regions)
	}

	season, remaining := u.World.SeasonNow(nowFn().UTC())
	resp.Season = season
	resp.SeasonEndsInSeconds = int(remaining / time.Second)

	if u.Content != nil {
		resp.CatalogItems = len(u.Content.Items())
		resp.CatalogTemplates = len(u.Content.Templates())
		resp.CatalogCreatures = len(u.Content.Creatures())
	}
	return resp, nil
}
