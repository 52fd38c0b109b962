// Package authtoken mints and verifies the bearer tokens handed out at login.
//
// A token is the base64url (unpadded) encoding of a CBOR payload followed by
// a 32-byte keyed BLAKE3 MAC over that payload. The MAC key is derived from
// the shared secret with HKDF-SHA256, so the configured secret may be any
// length. Tokens are stateless: there is no revocation list and no replay
// cache, and a token stays valid until its expiry.
package authtoken

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/hkdf"
)

const (
	macSize = 32
	keySize = 32
)

var hkdfInfo = []byte("orderdesk.authtoken.mac.v1")

var (
	ErrEmptySecret = errors.New("authtoken: secret must not be empty")
	ErrInvalidTTL  = errors.New("authtoken: ttl must be positive")

	ErrMalformedToken   = fmt.Errorf("%w: malformed encoding", errs.ErrInvalidToken)
	ErrTokenTooShort    = fmt.Errorf("%w: too short for MAC", errs.ErrInvalidToken)
	ErrInvalidSignature = fmt.Errorf("%w: MAC mismatch", errs.ErrInvalidToken)
	ErrInvalidPayload   = fmt.Errorf("%w: undecodable payload", errs.ErrInvalidToken)
	ErrInvalidSubject   = fmt.Errorf("%w: subject is not a user id", errs.ErrInvalidToken)
	ErrTokenExpired     = fmt.Errorf("%w: expired", errs.ErrInvalidToken)
)

// Claims is the signed payload. Times are Unix nanoseconds.
type Claims struct {
	Subject   string `cbor:"1,keyasint"`
	ID        string `cbor:"2,keyasint"`
	IssuedAt  int64  `cbor:"3,keyasint"`
	ExpiresAt int64  `cbor:"4,keyasint"`
}

// Service signs and verifies tokens with one process-wide key. It is safe for
// concurrent use.
type Service struct {
	key     []byte
	encMode cbor.EncMode
	decMode cbor.DecMode
	now     func() time.Time
}

// NewService derives the MAC key from secret.
func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, hkdfInfo), key); err != nil {
		return nil, fmt.Errorf("authtoken: deriving key: %w", err)
	}

	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("authtoken: cbor encoder: %w", err)
	}

	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("authtoken: cbor decoder: %w", err)
	}

	return &Service{
		key:     key,
		encMode: encMode,
		decMode: decMode,
		now:     time.Now,
	}, nil
}

// Issue mints a token for subject valid for ttl from now.
func (s *Service) Issue(subject kernel.UUID, ttl time.Duration) (string, error) {
	return s.IssueAt(subject, ttl, s.now())
}

// IssueAt mints a token as if the current time were now.
func (s *Service) IssueAt(subject kernel.UUID, ttl time.Duration, now time.Time) (string, error) {
	if err := subject.Validate(); err != nil {
		return "", err
	}
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	id := make([]byte, 16)
	if _, err := rand.Read(id); err != nil {
		return "", fmt.Errorf("authtoken: token id: %w", err)
	}

	payload, err := s.encMode.Marshal(Claims{
		Subject:   subject.String(),
		ID:        hex.EncodeToString(id),
		IssuedAt:  now.UnixNano(),
		ExpiresAt: now.Add(ttl).UnixNano(),
	})
	if err != nil {
		return "", fmt.Errorf("authtoken: encoding payload: %w", err)
	}

	raw := make([]byte, 0, len(payload)+macSize)
	raw = append(raw, payload...)
	raw = append(raw, s.mac(payload)...)

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Validate returns the subject of token if it is intact and unexpired.
func (s *Service) Validate(token string) (kernel.UUID, error) {
	return s.ValidateAt(token, s.now())
}

// ValidateAt checks token against now. A token is expired from the instant
// now reaches its expiry.
func (s *Service) ValidateAt(token string, now time.Time) (kernel.UUID, error) {
	claims, err := s.ParseAt(token, now)
	if err != nil {
		return kernel.UUID{}, err
	}

	subject, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidSubject, err)
	}
	if err = subject.Validate(); err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidSubject, err)
	}

	return subject, nil
}

// ParseAt verifies the MAC and expiry and returns the decoded claims.
func (s *Service) ParseAt(token string, now time.Time) (*Claims, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if len(raw) <= macSize {
		return nil, ErrTokenTooShort
	}

	split := len(raw) - macSize
	payload, signature := raw[:split], raw[split:]

	if subtle.ConstantTimeCompare(s.mac(payload), signature) != 1 {
		return nil, ErrInvalidSignature
	}

	var claims Claims
	if err = s.decMode.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if now.UnixNano() >= claims.ExpiresAt {
		return nil, ErrTokenExpired
	}

	return &claims, nil
}

func (s *Service) mac(payload []byte) []byte {
	hasher, err := blake3.NewKeyed(s.key)
	if err != nil {
		panic("authtoken: BLAKE3 keyed hash initialization failed (key must be 32 bytes): " + err.Error())
	}
	_, _ = hasher.Write(payload)
	return hasher.Sum(nil)
}
