package server_test

import (
	"testing"

	"catalog-ingest/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsPublicPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"Swagger", "/swagger/index.html", true},
		{"Metrics", "/metrics", true},
		{"Health", "/health", true},
		{"Extract", "/extract", false},
		{"Items", "/items/all", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.Config{}.IsPublicPath(tt.path))
		})
	}
}

func TestConfig_IsPublicPath_MockStore(t *testing.T) {
	assert.False(t, server.Config{}.IsPublicPath("/items/byFederatedIds"))
	assert.True(t, server.Config{MockStore: true}.IsPublicPath("/items/byFederatedIds"))
	assert.True(t, server.Config{MockStore: true}.IsPublicPath("/items/batch"))
	assert.False(t, server.Config{MockStore: true}.IsPublicPath("/extract"))
}
