package speech

import "sync"

// Registry manages speech service instances.
type Registry struct {
	services map[Provider]Service
	mu       sync.RWMutex
}

// NewRegistry creates a new speech service registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[Provider]Service),
	}
}

// Register adds a service to the registry.
func (r *Registry) Register(s Service) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services[s.Provider()] = s
}

// Get retrieves a service by provider.
func (r *Registry) Get(provider Provider) (Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[provider]
	return s, ok
}

// List returns all registered providers.
func (r *Registry) List() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]Provider, 0, len(r.services))
	for p := range r.services {
		providers = append(providers, p)
	}

	return providers
}

// Close closes all registered services.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.services {
		if err := s.Close(); err != nil {
			return err
		}
	}

	return nil
}
