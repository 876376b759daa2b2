package mikrotik

import (
	"crypto/tls"
	"fmt"

	"github.com/go-routeros/routeros/v3"
)

// apiClient implements Client over the RouterOS API port.
type apiClient struct {
	conn *routeros.Client
}

// Dial opens an API session against a router. Routers ship self-signed
// certificates, so the TLS dial skips verification.
func Dial(host string, port int, username, password string, useSSL bool) (Client, error) {
	address := fmt.Sprintf("%s:%d", host, port)
	var conn *routeros.Client
	var err error
	if useSSL {
		conn, err = routeros.DialTLS(address, username, password, &tls.Config{InsecureSkipVerify: true})
	} else {
		conn, err = routeros.Dial(address, username, password)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	return &apiClient{conn: conn}, nil
}

func (a *apiClient) EnsureProfile(p ProfileSync) (string, error) {
	args := []string{
		"=name=" + p.Name,
		"=only-one=" + boolWord(p.OnlyOne),
	}
	args = appendArg(args, "local-address", p.LocalAddress)
	args = appendArg(args, "remote-address", p.RemoteAddress)
	args = appendArg(args, "rate-limit", p.RateLimit)
	args = appendArg(args, "parent-queue", p.ParentQueue)

	if p.MikrotikID != "" {
		sentence := append([]string{"/ppp/profile/set", "=.id=" + p.MikrotikID}, args...)
		if _, err := a.conn.Run(sentence...); err != nil {
			return "", err
		}
		return p.MikrotikID, nil
	}
	reply, err := a.conn.Run(append([]string{"/ppp/profile/add"}, args...)...)
	if err != nil {
		return "", err
	}
	return reply.Done.Map["ret"], nil
}

func (a *apiClient) EnsureSecret(s SecretSync) (string, error) {
	args := []string{
		"=name=" + s.Username,
		"=password=" + s.Password,
		"=disabled=" + boolWord(s.Disabled),
	}
	args = appendArg(args, "service", s.Service)
	args = appendArg(args, "profile", s.Profile)
	args = appendArg(args, "local-address", s.LocalAddress)
	args = appendArg(args, "remote-address", s.RemoteAddress)

	if s.MikrotikID != "" {
		sentence := append([]string{"/ppp/secret/set", "=.id=" + s.MikrotikID}, args...)
		if _, err := a.conn.Run(sentence...); err != nil {
			return "", err
		}
		return s.MikrotikID, nil
	}
	reply, err := a.conn.Run(append([]string{"/ppp/secret/add"}, args...)...)
	if err != nil {
		return "", err
	}
	return reply.Done.Map["ret"], nil
}

func (a *apiClient) RemoveProfile(mikrotikID string) error {
	_, err := a.conn.Run("/ppp/profile/remove", "=.id="+mikrotikID)
	return err
}

func (a *apiClient) RemoveSecret(mikrotikID string) error {
	_, err := a.conn.Run("/ppp/secret/remove", "=.id="+mikrotikID)
	return err
}

func (a *apiClient) Close() error {
	return a.conn.Close()
}

func appendArg(args []string, key, value string) []string {
	if value == "" {
		return args
	}
	return append(args, "="+key+"="+value)
}

func boolWord(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
