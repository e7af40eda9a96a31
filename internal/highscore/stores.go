package highscore

import (
	"context"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-breaker/internal/storage"
)

// Memory keeps the value in process. Used for tests and as the degraded
// fallback when a durable backend cannot be opened.
type Memory struct {
	mu    sync.Mutex
	score int
}

func (m *Memory) Load(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *Memory) Save(_ context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = max(m.score, score)
	return nil
}

func (m *Memory) Close() error { return nil }

// SQLite stores the value in the high_scores table of a score database.
// The database is owned by the caller and not closed by Close.
type SQLite struct {
	db  *storage.Store
	key string
}

// NewSQLite wraps an open score store.
func NewSQLite(db *storage.Store, key string) *SQLite {
	return &SQLite{db: db, key: key}
}

func (s *SQLite) Load(context.Context) (int, error) {
	return s.db.LoadHighScore(s.key)
}

func (s *SQLite) Save(_ context.Context, score int) error {
	return s.db.SaveHighScore(s.key, score)
}

func (s *SQLite) Close() error { return nil }

// gdata object and property names
const (
	gdataObject   = "highscore"
	gdataProperty = "best"
)

type gdataRecord struct {
	Score int `yaml:"score"`
}

// Gdata stores the value as a small YAML document in the per-user data
// directory. A nil manager runs in degraded mode: loads return 0 and saves
// are dropped.
type Gdata struct {
	manager *gdata.Manager
}

// OpenGdata opens the gdata store for appName.
func OpenGdata(appName string) (*Gdata, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("highscore: open gdata: %w", err)
	}
	return &Gdata{manager: m}, nil
}

func (g *Gdata) Load(context.Context) (int, error) {
	if g.manager == nil || !g.manager.ObjectPropExists(gdataObject, gdataProperty) {
		return 0, nil
	}

	data, err := g.manager.LoadObjectProp(gdataObject, gdataProperty)
	if err != nil {
		return 0, fmt.Errorf("highscore: load gdata: %w", err)
	}

	var rec gdataRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("highscore: decode gdata: %w", err)
	}
	return rec.Score, nil
}

func (g *Gdata) Save(ctx context.Context, score int) error {
	if g.manager == nil {
		return nil
	}

	current, err := g.Load(ctx)
	if err == nil && current >= score {
		return nil
	}

	data, err := yaml.Marshal(gdataRecord{Score: score})
	if err != nil {
		return fmt.Errorf("highscore: encode gdata: %w", err)
	}
	if err := g.manager.SaveObjectProp(gdataObject, gdataProperty, data); err != nil {
		return fmt.Errorf("highscore: save gdata: %w", err)
	}
	return nil
}

func (g *Gdata) Close() error { return nil }

// saveMax sets KEYS[1] to ARGV[1] only if it is larger, atomically.
var saveMax = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local score = tonumber(ARGV[1])
if score > current then
	redis.call('SET', KEYS[1], score)
	return score
end
return current
`)

// Redis stores the value under a single key, shared by every client
// pointing at the same server.
type Redis struct {
	client *redis.Client
	key    string
}

// OpenRedis connects using a redis:// URL.
func OpenRedis(url, key string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("highscore: parse redis url: %w", err)
	}
	return &Redis{client: redis.NewClient(opts), key: key}, nil
}

func (r *Redis) Load(ctx context.Context) (int, error) {
	score, err := r.client.Get(ctx, r.key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: redis get: %w", err)
	}
	return score, nil
}

func (r *Redis) Save(ctx context.Context, score int) error {
	if err := saveMax.Run(ctx, r.client, []string{r.key}, score).Err(); err != nil {
		return fmt.Errorf("highscore: redis save: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
