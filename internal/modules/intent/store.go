// README: Catalog store: memoized load from Redis/file, lookup, prompt formatting.
package intent

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisCatalogKey holds an optional catalog document that takes precedence
// over the file source, allowing catalog hot-swaps across instances.
const redisCatalogKey = "chatbot:intents"

// Store loads and caches the intent catalog and the response-schema template.
//
// Every method is total: no error ever escapes to the caller. Failure paths
// degrade to an empty or default value plus a logged diagnostic, so catalog
// unavailability can never take down the request path.
type Store struct {
	intentsPath  string
	templatePath string
	redis        *redis.Client
	log          *zap.Logger

	mu      sync.RWMutex
	catalog *Catalog
}

// NewStore returns a Store reading the catalog from intentsPath and the
// response template from templatePath. redisClient may be nil; when set, the
// chatbot:intents key overrides the file source.
func NewStore(intentsPath, templatePath string, redisClient *redis.Client, log *zap.Logger) *Store {
	return &Store{
		intentsPath:  intentsPath,
		templatePath: templatePath,
		redis:        redisClient,
		log:          log,
	}
}

// Load returns the catalog, reading the source on first use and memoizing it
// process-wide. A missing or unreadable source yields an empty catalog, and
// the empty result is not cached, so a later call re-reads the source.
func (s *Store) Load(ctx context.Context) *Catalog {
	s.mu.RLock()
	cached := s.catalog
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	catalog := s.read(ctx)
	if catalog == nil {
		return &Catalog{}
	}

	// Replace-the-reference swap: readers holding the old pointer keep a
	// consistent view, never a partially updated one.
	s.mu.Lock()
	if s.catalog == nil {
		s.catalog = catalog
	}
	loaded := s.catalog
	s.mu.Unlock()
	return loaded
}

// Invalidate clears the memoized catalog so the next Load re-reads the source.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.catalog = nil
	s.mu.Unlock()
}

// LookupIntent returns the intent with the given id from the loaded catalog.
func (s *Store) LookupIntent(ctx context.Context, id string) (*Intent, bool) {
	return s.Load(ctx).Lookup(id)
}

// FormatForPrompt serializes the catalog to a deterministic, indented JSON
// text for embedding in a prompt. Returns "{}" on any serialization failure.
func (s *Store) FormatForPrompt(ctx context.Context) string {
	catalog := s.Load(ctx)
	out, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		s.log.Error("failed to format catalog for prompt", zap.Error(err))
		return "{}"
	}
	return string(out)
}

// read fetches and parses the catalog from its source. Returns nil when the
// source is absent or unreadable.
func (s *Store) read(ctx context.Context) *Catalog {
	data := s.readSource(ctx)
	if data == nil {
		return nil
	}

	catalog, err := parseCatalog(data)
	if err != nil {
		s.log.Error("failed to parse intents catalog", zap.Error(err))
		return nil
	}
	s.log.Info("loaded intents catalog", zap.Int("intents", catalog.Len()))
	return catalog
}

func (s *Store) readSource(ctx context.Context) []byte {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, redisCatalogKey).Bytes()
		switch {
		case err == nil:
			s.log.Info("loaded intents catalog from redis", zap.String("key", redisCatalogKey))
			return data
		case errors.Is(err, redis.Nil):
			// Key absent: fall through to the file source.
		default:
			s.log.Warn("redis catalog read failed, falling back to file", zap.Error(err))
		}
	}

	data, err := os.ReadFile(s.intentsPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("intents file not found", zap.String("path", s.intentsPath))
		} else {
			s.log.Error("failed to read intents file", zap.String("path", s.intentsPath), zap.Error(err))
		}
		return nil
	}
	return data
}

// parseCatalog normalizes either physical catalog shape into a Catalog:
// {"intents": [{"id": ...}, ...]} or a direct {intentId: {...}} mapping.
// For the mapping shape, entries are ordered by key so downstream formatting
// stays deterministic.
func parseCatalog(data []byte) (*Catalog, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if raw, ok := doc["intents"]; ok {
		var intents []Intent
		if err := json.Unmarshal(raw, &intents); err != nil {
			return nil, err
		}
		return &Catalog{Intents: intents}, nil
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	catalog := &Catalog{Intents: make([]Intent, 0, len(keys))}
	for _, k := range keys {
		var in Intent
		if err := json.Unmarshal(doc[k], &in); err != nil {
			return nil, err
		}
		if in.ID == "" {
			in.ID = k
		}
		catalog.Intents = append(catalog.Intents, in)
	}
	return catalog, nil
}

// defaultResponseTemplate is embedded in the classification prompt as a shape
// example when the template source is absent.
const defaultResponseTemplate = `{
  "intent": "intent_name_or_Unknown",
  "is_matched": true,
  "intentId": "intent_id_or_null",
  "entity": [
    {
      "id": "entity_id",
      "label": "Entity Label",
      "type": "TEXT_INPUT",
      "options": [],
      "user_input": "extracted_value_or_null",
      "response": "matched_option_or_null"
    }
  ]
}`

// minimalResponseTemplate is the last-resort shape example when the template
// source exists but cannot be parsed.
const minimalResponseTemplate = `{"intent": "Unknown", "is_matched": false, "intentId": null, "entity": []}`

// ResponseTemplate reads the response-schema template source. On absence the
// built-in default is substituted; on a parse error the minimal fallback is
// used, so prompt construction never fails for this reason.
func (s *Store) ResponseTemplate() string {
	data, err := os.ReadFile(s.templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("response template file not found, using default", zap.String("path", s.templatePath))
		} else {
			s.log.Error("failed to read response template", zap.String("path", s.templatePath), zap.Error(err))
		}
		return defaultResponseTemplate
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Error("response template is not valid JSON, using minimal fallback", zap.Error(err))
		return minimalResponseTemplate
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.log.Error("failed to reserialize response template", zap.Error(err))
		return minimalResponseTemplate
	}
	return string(out)
}
