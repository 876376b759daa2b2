package mikrotik

// Client pushes PPP objects to a RouterOS device. The backend only stores the
// auto_sync flag and the remote object id; wire protocol details live behind
// this interface.
type Client interface {
	EnsureProfile(profile ProfileSync) (string, error)
	EnsureSecret(secret SecretSync) (string, error)
	RemoveProfile(mikrotikID string) error
	RemoveSecret(mikrotikID string) error
	Close() error
}

// ProfileSync mirrors the /ppp/profile fields the panel manages.
type ProfileSync struct {
	MikrotikID    string
	Name          string
	LocalAddress  string
	RemoteAddress string
	RateLimit     string
	ParentQueue   string
	OnlyOne       bool
}

// SecretSync mirrors the /ppp/secret fields the panel manages.
type SecretSync struct {
	MikrotikID    string
	Username      string
	Password      string
	Service       string
	Profile       string
	LocalAddress  string
	RemoteAddress string
	Disabled      bool
}
