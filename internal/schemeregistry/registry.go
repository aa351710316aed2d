package schemeregistry

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"payroll-engine/internal/metrics"
)

var log = logrus.WithField("module", "schemeregistry")

// Resolution is the scheme chosen for a requested ID. Fallback is set when
// the requested scheme could not be loaded and the default was used.
type Resolution struct {
	Scheme   *Scheme
	Fallback bool
}

// Registry resolves scheme IDs, fetching unknown ones from a remote scheme
// service and caching them for the life of the process.
type Registry struct {
	url      string
	client   *http.Client
	cache    sync.Map
	fallback *Scheme
}

// New creates a registry. An empty baseURL disables remote lookups and
// every ID other than the fallback's resolves to the fallback.
func New(baseURL string, timeout time.Duration, fallback *Scheme) *Registry {
	r := &Registry{url: baseURL, fallback: fallback}
	if baseURL != "" {
		r.client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	r.cache.Store(fallback.ID, fallback)
	return r
}

func (r *Registry) Default() *Scheme {
	return r.fallback
}

// Resolve looks up each distinct ID, fetching cache misses concurrently.
// The empty ID maps to the default scheme.
func (r *Registry) Resolve(ctx context.Context, ids []string) map[string]Resolution {
	result := make(map[string]Resolution, len(ids))

	var toFetch []string
	for _, id := range ids {
		if _, done := result[id]; done {
			continue
		}
		if id == "" {
			result[id] = Resolution{Scheme: r.fallback}
			continue
		}
		if s, ok := r.cache.Load(id); ok {
			metrics.SchemeFetches.WithLabelValues("hit").Inc()
			result[id] = Resolution{Scheme: s.(*Scheme)}
			continue
		}
		result[id] = Resolution{}
		toFetch = append(toFetch, id)
	}

	if len(toFetch) == 0 {
		return result
	}

	if len(toFetch) == 1 {
		result[toFetch[0]] = r.load(ctx, toFetch[0])
		return result
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, id := range toFetch {
		wg.Add(1)
		go func(schemeID string) {
			defer wg.Done()
			res := r.load(ctx, schemeID)
			mu.Lock()
			result[schemeID] = res
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return result
}

func (r *Registry) load(ctx context.Context, id string) Resolution {
	s, err := r.fetch(ctx, id)
	if err != nil {
		metrics.SchemeFetches.WithLabelValues("fallback").Inc()
		log.WithError(err).WithField("scheme_id", id).Warn("scheme unavailable, using default")
		return Resolution{Scheme: r.fallback, Fallback: true}
	}
	metrics.SchemeFetches.WithLabelValues("fetched").Inc()
	r.cache.Store(id, s)
	return Resolution{Scheme: s}
}

func (r *Registry) fetch(ctx context.Context, id string) (*Scheme, error) {
	if r.client == nil {
		return nil, errNoRegistry
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url+"/schemes/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &statusError{code: resp.StatusCode}
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.SchemeID == "" {
		doc.SchemeID = id
	}
	return doc.Build()
}
