package oauth

// Stage is the progress of a Service through the authorization code flow.
type Stage int

const (
	// StageUnconfigured means credentials or the redirect URI are missing.
	StageUnconfigured Stage = iota
	// StageConfigured means the service can build an authorization URL and exchange codes.
	StageConfigured
	// StageAuthorized means a non-expired access token is stored.
	StageAuthorized
)

func (s Stage) String() string {
	switch s {
	case StageConfigured:
		return "configured"
	case StageAuthorized:
		return "authorized"
	default:
		return "unconfigured"
	}
}
