package entities

// Credentials authenticate every call to the translation provider.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}
