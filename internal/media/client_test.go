package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

func TestClientAPI_DeliveryHostAndAssetURL(t *testing.T) {
	tests := []struct {
		name     string
		params   models.EffectiveConfigParams
		wantHost string
		wantURL  string
	}{
		{
			name:     "shared secure",
			params:   models.EffectiveConfigParams{CloudName: "acme", Secure: true},
			wantHost: "res.cloudinary.com",
			wantURL:  "https://res.cloudinary.com/acme/image/upload/sample.jpg",
		},
		{
			name:     "shared insecure",
			params:   models.EffectiveConfigParams{CloudName: "acme", Secure: false},
			wantHost: "res.cloudinary.com",
			wantURL:  "http://res.cloudinary.com/acme/image/upload/sample.jpg",
		},
		{
			name:     "private cdn",
			params:   models.EffectiveConfigParams{CloudName: "acme", Secure: true, PrivateCdn: true},
			wantHost: "acme-res.cloudinary.com",
			wantURL:  "https://acme-res.cloudinary.com/image/upload/sample.jpg",
		},
		{
			name: "secure distribution",
			params: models.EffectiveConfigParams{
				CloudName:  "acme",
				Secure:     true,
				PrivateCdn: true,
				Extra:      map[string]any{"secureDistribution": "media.acme.io"},
			},
			wantHost: "media.acme.io",
			wantURL:  "https://media.acme.io/image/upload/sample.jpg",
		},
		{
			name: "secure distribution ignored over http",
			params: models.EffectiveConfigParams{
				CloudName: "acme",
				Extra:     map[string]any{"secureDistribution": "media.acme.io"},
			},
			wantHost: "res.cloudinary.com",
			wantURL:  "http://res.cloudinary.com/acme/image/upload/sample.jpg",
		},
		{
			name: "cname over http",
			params: models.EffectiveConfigParams{
				CloudName: "acme",
				Extra:     map[string]any{"cname": "img.acme.io"},
			},
			wantHost: "img.acme.io",
			wantURL:  "http://img.acme.io/acme/image/upload/sample.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClientAPI(models.NewEffectiveConfig(tt.params))
			assert.Equal(t, tt.wantHost, c.DeliveryHost())
			assert.Equal(t, tt.wantURL, c.AssetURL("image", "sample.jpg"))
		})
	}
}

func TestClientAPI_AssetURL_TrimsLeadingSlash(t *testing.T) {
	c := NewClientAPI(models.NewEffectiveConfig(models.EffectiveConfigParams{CloudName: "acme", Secure: true}))
	assert.Equal(t, "https://res.cloudinary.com/acme/video/upload/folder/clip.mp4", c.AssetURL("video", "/folder/clip.mp4"))
}

func TestClientAPI_ConfigIsShared(t *testing.T) {
	cfg := models.NewEffectiveConfig(models.EffectiveConfigParams{CloudName: "acme"})
	assert.Same(t, cfg, NewClientAPI(cfg).Config())
}
