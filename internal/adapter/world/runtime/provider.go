package runtime

import (
	"context"
	"math/bits"
	"math/rand"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/catalogadmin"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/gen"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

type Config struct {
	Seed     int64
	Profile  world.WorldProfile
	Language string
	Content  ports.ContentProvider
	Catalog  ports.CustomCatalogRepository
	Metrics  ports.GenerationMetrics
	Clock    world.SeasonClock
	Now      func() time.Time
	Warn     gen.WarnFunc
}

// Provider implements ports.WorldProvider on top of the generation
// pipeline. Chunk content is a pure function of (seed, coordinate,
// season, content pack), so regenerating a coordinate that was lost
// reproduces the same chunk.
type Provider struct {
	cfg       Config
	assembler gen.Assembler
}

func NewProvider(cfg Config) *Provider {
	if cfg.Profile == (world.WorldProfile{}) {
		cfg.Profile = world.DefaultProfile()
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	p := &Provider{cfg: cfg}
	warn := func(format string, args ...any) {
		if cfg.Metrics != nil {
			cfg.Metrics.RecordTemplateWarning()
		}
		if cfg.Warn != nil {
			cfg.Warn(format, args...)
		}
	}
	p.assembler = gen.Assembler{
		Templates: cfg.Content.Templates(),
		Items:     cfg.Content.Items(),
		Creatures: cfg.Content.Creatures(),
		Language:  cfg.Language,
		Warn:      warn,
	}
	return p
}

func (p *Provider) EnsureChunk(ctx context.Context, st world.ExpansionState, pos world.Point) (world.ExpansionState, error) {
	expander, season, err := p.expanderFor(ctx)
	if err != nil {
		return st, err
	}
	return expander.EnsureChunkExists(p.rngFor(pos, saltTerrain), pos, st, p.cfg.Profile, season)
}

func (p *Provider) EnsureRadius(ctx context.Context, st world.ExpansionState, center world.Point, radius int) (world.ExpansionState, error) {
	expander, season, err := p.expanderFor(ctx)
	if err != nil {
		return st, err
	}
	return expander.GenerateChunksInRadius(p.rngFor(center, saltTerrain), center, radius, st, p.cfg.Profile, season)
}

func (p *Provider) SeasonNow(now time.Time) (world.Season, time.Duration) {
	return p.cfg.Clock.SeasonAt(now)
}

func (p *Provider) expanderFor(ctx context.Context) (gen.Expander, world.Season, error) {
	custom, err := p.loadCustom(ctx)
	if err != nil {
		return gen.Expander{}, "", err
	}
	season, _ := p.cfg.Clock.SeasonAt(p.cfg.Now().UTC())
	expander := gen.Expander{
		Terrains:  p.cfg.Content.Terrains(),
		Generator: regionGenerator{provider: p, custom: custom},
	}
	return expander, season, nil
}

func (p *Provider) loadCustom(ctx context.Context) (gen.CustomContent, error) {
	if p.cfg.Catalog == nil {
		return gen.CustomContent{}, nil
	}
	items, structures, err := catalogadmin.EnabledContent(ctx, p.cfg.Catalog)
	if err != nil {
		return gen.CustomContent{}, err
	}
	return gen.CustomContent{Items: items, Structures: structures}, nil
}

// regionGenerator binds one request's custom content to the provider so
// region materialization stays free of context plumbing.
type regionGenerator struct {
	provider *Provider
	custom   gen.CustomContent
}

func (g regionGenerator) GenerateRegion(pos world.Point, terrain world.Terrain, st world.ExpansionState, profile world.WorldProfile, season world.Season) (world.ExpansionState, error) {
	p := g.provider
	snap := p.snapshotFor(pos, terrain, season)
	content := p.assembler.Assemble(p.rngFor(pos, saltContent), snap, profile, g.custom)

	st.Chunks[pos.Key()] = content
	st.RegionCounter++
	st.Regions[st.RegionCounter] = world.Region{
		ID:      st.RegionCounter,
		Terrain: terrain,
		Origin:  pos,
		Chunks:  []string{pos.Key()},
	}

	if p.cfg.Metrics != nil {
		p.cfg.Metrics.RecordChunkGenerated(terrain)
		if len(content.Actions) == 0 {
			p.cfg.Metrics.RecordPlaceholder()
		}
	}
	return st, nil
}

const (
	saltTerrain uint64 = 0x51ed270b
	saltContent uint64 = 0x9b97f4a7
	saltEnv     uint64 = 0x2545f491
)

// rngFor derives a coordinate-local RNG. Mixing the world seed with the
// coordinate keeps generation order-independent across sweep patterns.
func (p *Provider) rngFor(pos world.Point, salt uint64) *rand.Rand {
	h := uint64(p.cfg.Seed) ^ salt
	h ^= uint64(int64(pos.X)) * 0x9e3779b97f4a7c15
	h = bits.RotateLeft64(h, 31)
	h ^= uint64(int64(pos.Y)) * 0xbf58476d1ce4e5b9
	h = bits.RotateLeft64(h, 27) * 0x94d049bb133111eb
	return rand.New(rand.NewSource(int64(h >> 1)))
}

type terrainBase struct {
	vegetation float64
	moisture   float64
	elevation  float64
	danger     float64
	temp       float64
	soil       world.SoilType
}

var terrainBases = map[world.Terrain]terrainBase{
	world.TerrainForest:   {vegetation: 75, moisture: 60, elevation: 40, danger: 30, temp: 55, soil: world.SoilLoam},
	world.TerrainPlains:   {vegetation: 50, moisture: 45, elevation: 30, danger: 20, temp: 60, soil: world.SoilLoam},
	world.TerrainDesert:   {vegetation: 10, moisture: 10, elevation: 35, danger: 40, temp: 85, soil: world.SoilSand},
	world.TerrainSwamp:    {vegetation: 65, moisture: 90, elevation: 15, danger: 45, temp: 60, soil: world.SoilPeat},
	world.TerrainMountain: {vegetation: 25, moisture: 35, elevation: 85, danger: 50, temp: 35, soil: world.SoilRocky},
	world.TerrainTundra:   {vegetation: 15, moisture: 30, elevation: 45, danger: 35, temp: 10, soil: world.SoilFrost},
}

// snapshotFor derives the chunk's environmental profile from the
// coordinate hash: terrain base values plus bounded jitter, then a
// seasonal adjustment.
func (p *Provider) snapshotFor(pos world.Point, terrain world.Terrain, season world.Season) world.EnvironmentalSnapshot {
	rng := p.rngFor(pos, saltEnv)
	base, ok := terrainBases[terrain]
	if !ok {
		base = terrainBases[world.TerrainPlains]
	}

	jitter := func(v, spread float64) float64 {
		return gen.Clamp(0, 100, v+(rng.Float64()*2-1)*spread)
	}

	snap := world.EnvironmentalSnapshot{
		Terrain:           terrain,
		SoilType:          base.soil,
		VegetationDensity: jitter(base.vegetation, 15),
		Moisture:          jitter(base.moisture, 15),
		Elevation:         jitter(base.elevation, 10),
		DangerLevel:       jitter(base.danger, 15),
		MagicAffinity:     jitter(20, 20),
		HumanPresence:     jitter(15, 15),
		PredatorPresence:  jitter(base.danger*0.8, 15),
		Temperature:       jitter(base.temp, 10),
		Explorability:     jitter(60, 20),
		TravelCost:        jitter(100-base.vegetation*0.3, 15),
		LightLevel:        jitter(70, 15),
		WindLevel:         jitter(40, 25),
	}

	switch season {
	case world.SeasonSummer:
		snap.Temperature = gen.Clamp(0, 100, snap.Temperature+10)
	case world.SeasonAutumn:
		snap.VegetationDensity = gen.Clamp(0, 100, snap.VegetationDensity-10)
	case world.SeasonWinter:
		snap.Temperature = gen.Clamp(0, 100, snap.Temperature-20)
		snap.VegetationDensity = gen.Clamp(0, 100, snap.VegetationDensity-20)
		snap.DangerLevel = gen.Clamp(0, 100, snap.DangerLevel+10)
	}
	return snap
}

var _ ports.WorldProvider = (*Provider)(nil)
var _ gen.RegionGenerator = regionGenerator{}
