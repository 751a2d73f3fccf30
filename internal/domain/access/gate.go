package access

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
)

const (
	// Username and Password form the single static credential guarding the stats endpoint.
	Username = "forecast"
	Password = "forecast"

	// Challenge is sent with every rejection so browsers prompt for credentials.
	Challenge = `Basic realm="Please enter your credentials"`

	unauthorizedBody = "Unauthorized"
	basicScheme      = "Basic"
)

// Decision is the outcome of an authorization check. A rejected decision carries the
// response the transport must write.
type Decision struct {
	Authorized bool
	Principal  string
	Status     int
	Challenge  string
	Body       string
}

// Gate validates Basic credentials against the static account.
type Gate struct {
	expected []byte
}

// NewGate builds a gate for the static stats account.
func NewGate() *Gate {
	return &Gate{expected: []byte(Username + ":" + Password)}
}

// Authorize inspects the Authorization header. Every failure, whether a missing header, another
// scheme, a bad encoding or a wrong credential, yields the same rejection.
func (g *Gate) Authorize(header http.Header) Decision {
	raw := header.Get("Authorization")
	scheme, payload, ok := strings.Cut(raw, " ")
	if !ok || !strings.EqualFold(scheme, basicScheme) {
		return rejected()
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return rejected()
	}
	if subtle.ConstantTimeCompare(decoded, g.expected) != 1 {
		return rejected()
	}
	return Decision{Authorized: true, Principal: Username, Status: http.StatusOK}
}

func rejected() Decision {
	return Decision{
		Status:    http.StatusUnauthorized,
		Challenge: Challenge,
		Body:      unauthorizedBody,
	}
}
