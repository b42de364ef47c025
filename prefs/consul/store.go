package consul

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/consul/api"
)

// ConsulStore reads preferences from the HashiCorp Consul KV store.
//
// Architecture:
// - Each preference is a single KV entry under a configurable prefix
// - Values are stored as plain strings ("true", "3", ...)
// - Lookups go straight to Consul; no local caching beyond a listing
//   cycle is performed here
//
// Best suited for sharing one preference set across several hosts.
type ConsulStore struct {
	mu     sync.RWMutex
	client *api.Client
	kv     *api.KV

	// Configuration
	config *ConsulStoreConfig
}

// ConsulStoreConfig contains configuration options for the Consul store
type ConsulStoreConfig struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Datacenter to use (optional)
	Datacenter string

	// Prefix for all keys in Consul KV (default: "explorer/prefs")
	Prefix string
}

// NewConsulStore creates a new Consul-backed preference store
func NewConsulStore(config *ConsulStoreConfig) (*ConsulStore, error) {
	if config == nil {
		config = &ConsulStoreConfig{}
	}

	// Set defaults
	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}

	if config.Prefix == "" {
		config.Prefix = "explorer/prefs"
	}

	// Create Consul client
	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}
	if config.Datacenter != "" {
		clientConfig.Datacenter = config.Datacenter
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return &ConsulStore{
		client: client,
		kv:     client.KV(),
		config: config,
	}, nil
}

// Name returns the identifier name defined for this store
func (*ConsulStore) Name() string {
	return "consul"
}

// Open is part of the lifecycle behaviour and gets called when opening this store.
func (cs *ConsulStore) Open(ctx context.Context) error {
	// Nothing to initialize - Consul handles connections
	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this store.
func (cs *ConsulStore) Close(ctx context.Context) error {
	// Nothing to clean up - Consul client is stateless
	return nil
}

// Bool returns the boolean value stored under key, or def when absent.
func (cs *ConsulStore) Bool(ctx context.Context, key string, def bool) (bool, error) {
	raw, exists, err := cs.get(ctx, key)
	if err != nil || !exists {
		return def, err
	}

	return raw == "true" || raw == "1" || raw == "yes", nil
}

// Int returns the integer value stored under key, or def when absent.
func (cs *ConsulStore) Int(ctx context.Context, key string, def int) (int, error) {
	raw, exists, err := cs.get(ctx, key)
	if err != nil || !exists {
		return def, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def, nil
	}

	return value, nil
}

func (cs *ConsulStore) get(ctx context.Context, key string) (string, bool, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	pair, _, err := cs.kv.Get(cs.buildKey(key), (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return "", false, err
	}
	if pair == nil {
		return "", false, nil
	}

	return strings.TrimSpace(string(pair.Value)), true, nil
}

// buildKey constructs the full Consul KV key from the preference key
func (cs *ConsulStore) buildKey(key string) string {
	prefix := cs.config.Prefix
	if prefix[len(prefix)-1] != '/' {
		prefix += "/"
	}
	return prefix + key
}
