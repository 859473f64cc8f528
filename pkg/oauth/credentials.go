package oauth

// Credentials identify the client application to the provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// IsZero reports whether neither field is set.
func (c Credentials) IsZero() bool {
	return c.ClientID == "" && c.ClientSecret == ""
}

// Validate returns an error naming the first missing field.
func (c Credentials) Validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	return nil
}
