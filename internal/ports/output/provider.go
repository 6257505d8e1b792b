package output

import (
	"context"
	"net/url"
)

// ProviderClient sends one authenticated form request to a provider endpoint
// and returns the raw status and body. It does not interpret the status.
type ProviderClient interface {
	Execute(ctx context.Context, endpoint string, form url.Values) (int, []byte, error)
}

// Provider endpoints.
const (
	EndpointDetectLangs = "detectLangs"
	EndpointTranslate   = "n2mt"
)
