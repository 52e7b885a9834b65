package plan

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesocycle/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=plan_mocks_test.go -package=plan_test

// plans are immutable once stored, so entries only expire to bound memory
const planCacheExpireSeconds = 60 * 60 * 6

type planStore interface {
	Add(ctx context.Context, p *Plan) (*Plan, error)
	Get(ctx context.Context, id int) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
}

// CachedRepo serves plan reads from an in-process freecache in front of the store.
type CachedRepo struct {
	store planStore
	cache *freecache.Cache
}

func NewCachedRepo(store planStore, cacheSizeBytes int) *CachedRepo {
	megabyte := 1024 * 1024
	if cacheSizeBytes <= 0 {
		cacheSizeBytes = 8 * megabyte
	}
	return &CachedRepo{
		store: store,
		cache: freecache.NewCache(cacheSizeBytes),
	}
}

func (r *CachedRepo) Add(ctx context.Context, p *Plan) (*Plan, error) {
	added, err := r.store.Add(ctx, p)
	if err != nil {
		return nil, err
	}
	r.set(added)
	return added, nil
}

func (r *CachedRepo) Get(ctx context.Context, id int) (*Plan, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.cached.get")
	defer span.End()

	if planBytes, err := r.cache.Get(cacheKey(id)); err == nil {
		p := &Plan{}
		if err := json.Unmarshal(planBytes, p); err == nil {
			log.Tracef("plan %d found in cache", id)
			return p, nil
		} else {
			log.Errorf("failed to unmarshal plan %d from cache: %s", id, err)
		}
	}

	p, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(p)
	return p, nil
}

func (r *CachedRepo) List(ctx context.Context) ([]*Plan, error) {
	plans, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		r.set(p)
	}
	return plans, nil
}

func (r *CachedRepo) set(p *Plan) {
	planBytes, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal plan %d for cache: %s", p.ID, err)
		return
	}
	if err := r.cache.Set(cacheKey(p.ID), planBytes, planCacheExpireSeconds); err != nil {
		log.Errorf("failed to write plan %d to cache: %s", p.ID, err)
	}
}

func cacheKey(id int) []byte {
	return []byte("plan::" + strconv.Itoa(id))
}
