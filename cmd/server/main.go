package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	staticcontent "github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/content/static"
	httpadapter "github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/http"
	metricsinmem "github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/metrics/inmemory"
	gormrepo "github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/repo/gorm"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/repo/memory"
	worldruntime "github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/world/runtime"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/catalogadmin"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/chunk"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/explore"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/status"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	states, catalogRepo, txManager := mustBuildRepos()

	content, err := staticcontent.Load(strings.TrimSpace(os.Getenv("DREAMLAND_CONTENT_DIR")))
	if err != nil {
		log.Fatalf("load content pack: %v", err)
	}

	kpiRecorder := metricsinmem.NewRecorder()
	provider := worldruntime.NewProvider(worldruntime.Config{
		Seed: int64(intEnv("DREAMLAND_WORLD_SEED", 1)),
		Profile: world.WorldProfile{
			SpawnMultiplier: floatEnv("DREAMLAND_SPAWN_MULTIPLIER", 1),
			ResourceDensity: floatEnv("DREAMLAND_RESOURCE_DENSITY", 1),
		},
		Language: strings.TrimSpace(os.Getenv("DREAMLAND_LANGUAGE")),
		Content:  content,
		Catalog:  catalogRepo,
		Metrics:  kpiRecorder,
		Clock: world.NewSeasonClock(world.SeasonClockConfig{
			StartAt:        time.Unix(int64(intEnv("DREAMLAND_SEASON_START_UNIX", 0)), 0),
			SeasonDuration: time.Duration(intEnv("DREAMLAND_SEASON_SECONDS", int((24*time.Hour).Seconds()))) * time.Second,
		}),
		Warn: hlog.Warnf,
	})

	h := httpadapter.Handler{
		ExploreUC:           explore.UseCase{States: states, World: provider, Tx: txManager, Metrics: kpiRecorder},
		ChunkUC:             chunk.UseCase{States: states, World: provider, Tx: txManager, Metrics: kpiRecorder},
		StatusUC:            status.UseCase{States: states, World: provider, Content: content},
		RegisterItemUC:      catalogadmin.RegisterItemUseCase{Catalog: catalogRepo},
		RegisterStructureUC: catalogadmin.RegisterStructureUseCase{Catalog: catalogRepo},
		ListCatalogUC:       catalogadmin.ListUseCase{Catalog: catalogRepo},
		SetEnabledUC:        catalogadmin.SetEnabledUseCase{Catalog: catalogRepo},
		KPI:                 kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("DREAMLAND_LISTEN_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("dreamland engine listening on %s", addr)
	s.Spin()
}

func mustBuildRepos() (ports.WorldStateRepository, ports.CustomCatalogRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("DREAMLAND_DB_DSN"))
	if dsn == "" {
		log.Println("DREAMLAND_DB_DSN not set, using in-memory store (state is lost on restart)")
		store := memory.NewStore()
		return memory.NewWorldStateRepo(store), memory.NewCustomCatalogRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if dir := strings.TrimSpace(os.Getenv("DREAMLAND_MIGRATIONS_DIR")); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	return gormrepo.NewWorldStateRepo(db), gormrepo.NewCustomCatalogRepo(db), gormrepo.NewTxManager(db)
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
