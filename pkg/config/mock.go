package config

type mockConfig struct {
	conf map[string]string
}

// NewMockConfig returns a Config backed by the given map, for tests.
func NewMockConfig(configMap map[string]string) Config {
	if configMap == nil {
		configMap = make(map[string]string)
	}

	return &mockConfig{conf: configMap}
}

func (m *mockConfig) Get(key string) string {
	return m.conf[key]
}

func (m *mockConfig) GetOrDefault(key, defaultValue string) string {
	if val, ok := m.conf[key]; ok && val != "" {
		return val
	}

	return defaultValue
}
